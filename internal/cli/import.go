package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/checkit/checkit/internal/checklist"
	"github.com/checkit/checkit/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the checklist from a backup file",
	Long:  "Validates the backup first; a rejected file leaves the current checklist untouched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := storage.ImportFile(args[0])
		if err != nil {
			if pe, ok := checklist.AsParseError(err); ok {
				return fmt.Errorf("backup rejected, checklist left untouched: %w", pe)
			}
			return err
		}

		store, _, err := openStore()
		if err != nil {
			return err
		}
		store.Replace(doc)

		t := doc.Totals(time.Now())
		fmt.Printf("Imported %d sections, %d items (%d left, %d overdue)\n",
			len(doc.Sections), t.Total, t.Left, t.Overdue)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
