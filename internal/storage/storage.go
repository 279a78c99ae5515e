// Package storage persists checklist documents to disk: the autosave
// slot the store writes after every mutation, and manual export/import
// of backup files. Both channels share one JSON shape and go through
// the checklist parsing pipeline on the way in.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/checkit/checkit/internal/checklist"
)

const slotFileName = "checklist.json"

// DefaultExportName is the default filename for manual backups.
const DefaultExportName = "checkit-backup.json"

// FileStore is the file-backed persister: a single JSON slot file
// under the data directory, fully overwritten on every save.
//
// No locking; the store has a single synchronous writer.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir. The directory is
// created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the full path of the autosave slot.
func (f *FileStore) Path() string {
	return filepath.Join(f.dir, slotFileName)
}

// Load restores the document from the slot. A missing slot yields the
// seed document; a slot that fails the parsing pipeline is reported
// as an error so the caller can fall back explicitly.
func (f *FileStore) Load() (*checklist.Document, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return checklist.Seed(), nil
		}
		return nil, fmt.Errorf("read slot: %w", err)
	}
	doc, err := checklist.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("restore slot: %w", err)
	}
	return doc, nil
}

// Save overwrites the slot with the current document.
func (f *FileStore) Save(doc *checklist.Document) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := checklist.Serialize(doc)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	if err := os.WriteFile(f.Path(), data, 0o644); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

// Export writes the document as a pretty-printed backup file.
func Export(doc *checklist.Document, path string) error {
	data, err := checklist.Serialize(doc)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportFile reads a backup file and runs it through the validation
// pipeline. On any error the current state is untouched; the caller
// swaps the returned document in only on success.
func ImportFile(path string) (*checklist.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return checklist.ParseDocument(data)
}
