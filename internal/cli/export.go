package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkit/checkit/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the checklist to a backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			return err
		}
		path := storage.DefaultExportName
		if len(args) == 1 {
			path = args[0]
		}
		if err := storage.Export(store.Document(), path); err != nil {
			return err
		}
		fmt.Printf("Exported %q to %s\n", store.Document().Title, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
