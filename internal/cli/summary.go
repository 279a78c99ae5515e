package cli

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/checkit/checkit/internal/checklist"
)

var summaryCopy bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the checklist as plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		text := checklist.Summary(store.Document(), time.Now())
		if summaryCopy {
			if err := clipboard.WriteAll(text); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Println("Summary copied to clipboard.")
			return nil
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryCopy, "copy", false, "copy to the system clipboard instead of printing")
	rootCmd.AddCommand(summaryCmd)
}
