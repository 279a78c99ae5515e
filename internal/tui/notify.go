package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"

	"github.com/checkit/checkit/internal/checklist"
)

// notifyOverdueCmd sends one desktop notification at startup when the
// checklist has overdue items. Returns nil when there is nothing to
// report.
func notifyOverdueCmd(doc *checklist.Document, today time.Time) tea.Cmd {
	t := doc.Totals(today)
	if t.Overdue == 0 {
		return nil
	}

	title := doc.Title
	body := fmt.Sprintf("%d overdue items", t.Overdue)
	if t.Overdue == 1 {
		body = "1 overdue item"
	}

	return func() tea.Msg {
		if err := beeep.Notify(title, body, ""); err != nil {
			log.Debug("overdue notification failed", "err", err)
		}
		return nil
	}
}
