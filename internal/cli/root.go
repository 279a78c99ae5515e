// Package cli wires the cobra command tree. The bare root command
// launches the TUI; subcommands expose the backup channel and the
// summary text without entering it.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/checkit/checkit/internal/checklist"
	"github.com/checkit/checkit/internal/config"
	"github.com/checkit/checkit/internal/storage"
	"github.com/checkit/checkit/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:          "checkit",
	Short:        "Terminal checklist manager",
	Long:         "checkit is a terminal checklist manager: sections of items with due dates,\nsearch and overdue filters, and automatic persistence with JSON backups.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute is the entry point called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore loads config and restores the persisted checklist.
func openStore() (*checklist.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	dir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}
	return checklist.Open(storage.NewFileStore(dir)), cfg, nil
}

func runTUI() error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	// Route diagnostics (autosave failures and the like) to a log
	// file while the TUI owns the terminal.
	if dir, err := cfg.DataDir(); err == nil {
		logPath := filepath.Join(dir, "checkit.log")
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	}

	app := tui.NewApp(store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
