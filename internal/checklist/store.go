package checklist

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Persister saves and restores the document. The file-backed
// implementation lives in internal/storage; tests substitute an
// in-memory fake.
type Persister interface {
	Load() (*Document, error)
	Save(*Document) error
}

// Store owns the canonical in-memory document and applies all
// mutations to it. Every successful mutation autosaves through the
// injected persister. Operations targeting unknown ids are no-ops.
//
// The store is not safe for concurrent use; all operations run
// synchronously on the UI event loop.
type Store struct {
	doc       *Document
	persister Persister
}

// NewStore creates a store around an existing document. A nil
// persister disables autosave.
func NewStore(doc *Document, p Persister) *Store {
	return &Store{doc: doc, persister: p}
}

// Open loads the persisted document through the persister, falling
// back to the seed document when nothing usable is stored.
func Open(p Persister) *Store {
	doc, err := p.Load()
	if err != nil {
		log.Warn("could not restore checklist, starting fresh", "err", err)
		doc = Seed()
	}
	if doc == nil {
		doc = Seed()
	}
	return &Store{doc: doc, persister: p}
}

// Document returns the current document. Callers treat it as
// read-only and go through store operations for mutation.
func (s *Store) Document() *Document {
	return s.doc
}

// autosave persists the current document. A failed write is logged
// and otherwise ignored: the in-memory document stays authoritative
// for the rest of the session.
func (s *Store) autosave() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.doc); err != nil {
		log.Error("autosave failed", "err", err)
	}
}

// SetTitle replaces the document title verbatim.
func (s *Store) SetTitle(title string) {
	s.doc.Title = title
	s.autosave()
}

// AddSection appends a new empty section with a default name and
// returns it.
func (s *Store) AddSection() *Section {
	s.doc.Sections = append(s.doc.Sections, Section{
		ID:    NewID(),
		Name:  fmt.Sprintf("Section %d", len(s.doc.Sections)+1),
		Items: []Item{},
	})
	s.autosave()
	return &s.doc.Sections[len(s.doc.Sections)-1]
}

// RenameSection replaces a section's name verbatim. Names need not be
// unique.
func (s *Store) RenameSection(sectionID, name string) {
	sec := s.doc.Section(sectionID)
	if sec == nil {
		return
	}
	sec.Name = name
	s.autosave()
}

// DeleteSection removes a section. The last remaining section is
// never removed; attempting to returns ErrLastSection.
func (s *Store) DeleteSection(sectionID string) error {
	if len(s.doc.Sections) <= 1 {
		return ErrLastSection
	}
	for i := range s.doc.Sections {
		if s.doc.Sections[i].ID == sectionID {
			s.doc.Sections = append(s.doc.Sections[:i], s.doc.Sections[i+1:]...)
			s.autosave()
			return nil
		}
	}
	return nil
}

// AddItem appends a placeholder item to the section and returns it,
// or nil if the section does not exist.
func (s *Store) AddItem(sectionID string) *Item {
	sec := s.doc.Section(sectionID)
	if sec == nil {
		return nil
	}
	sec.Items = append(sec.Items, Item{ID: NewID(), Text: "New item"})
	s.autosave()
	return &sec.Items[len(sec.Items)-1]
}

// ItemPatch carries the item fields to change. Nil fields are left
// untouched.
type ItemPatch struct {
	Text    *string
	Done    *bool
	DueDate *string
}

// UpdateItem merges the patch into the matching item.
func (s *Store) UpdateItem(sectionID, itemID string, patch ItemPatch) {
	sec := s.doc.Section(sectionID)
	if sec == nil {
		return
	}
	it := sec.Item(itemID)
	if it == nil {
		return
	}
	if patch.Text != nil {
		it.Text = *patch.Text
	}
	if patch.Done != nil {
		it.Done = *patch.Done
	}
	if patch.DueDate != nil {
		it.DueDate = *patch.DueDate
	}
	s.autosave()
}

// ToggleDone flips an item's completion state.
func (s *Store) ToggleDone(sectionID, itemID string) {
	sec := s.doc.Section(sectionID)
	if sec == nil {
		return
	}
	it := sec.Item(itemID)
	if it == nil {
		return
	}
	it.Done = !it.Done
	s.autosave()
}

// DeleteItem removes the matching item.
func (s *Store) DeleteItem(sectionID, itemID string) {
	sec := s.doc.Section(sectionID)
	if sec == nil {
		return
	}
	i := sec.itemIndex(itemID)
	if i < 0 {
		return
	}
	sec.Items = append(sec.Items[:i], sec.Items[i+1:]...)
	s.autosave()
}

// ClearDone removes all completed items from every section.
func (s *Store) ClearDone() {
	for i := range s.doc.Sections {
		sec := &s.doc.Sections[i]
		kept := sec.Items[:0]
		for _, it := range sec.Items {
			if !it.Done {
				kept = append(kept, it)
			}
		}
		sec.Items = kept
	}
	s.autosave()
}

// ReorderItems moves the item at fromIndex to toIndex within one
// section. Out-of-range indices are clamped into the valid range.
// Returns true if the order actually changed.
func (s *Store) ReorderItems(sectionID string, fromIndex, toIndex int) bool {
	sec := s.doc.Section(sectionID)
	if sec == nil || len(sec.Items) == 0 {
		return false
	}
	from := clamp(fromIndex, 0, len(sec.Items)-1)
	to := clamp(toIndex, 0, len(sec.Items)-1)
	if from == to {
		return false
	}
	it := sec.Items[from]
	sec.Items = append(sec.Items[:from], sec.Items[from+1:]...)
	sec.Items = append(sec.Items[:to], append([]Item{it}, sec.Items[to:]...)...)
	s.autosave()
	return true
}

// Replace swaps in a whole new document atomically. Used by import
// after the new document passed validation.
func (s *Store) Replace(doc *Document) {
	s.doc = doc
	s.autosave()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
