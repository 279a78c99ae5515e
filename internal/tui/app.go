package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/checkit/checkit/internal/checklist"
	"github.com/checkit/checkit/internal/config"
)

// mode is the current input mode of the application.
type mode int

const (
	modeNormal mode = iota
	modeEditItem
	modeEditDue
	modeEditSection
	modeEditTitle
	modeSearch
	modeMove
)

// statusClearMsg dismisses the transient status line.
type statusClearMsg struct{}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	store *checklist.Store
	cfg   *config.Config

	// View state
	mode   mode
	filter checklist.FilterMode
	query  string

	// Flattened checklist body
	rows   []row
	cursor int

	// Input state (shared by edit and search modes)
	input         textinput.Model
	editSectionID string
	editItemID    string

	// Move mode state
	drag   checklist.Drag
	dragTo int

	// UI state
	statusMsg   string
	statusIsErr bool
	showHelp    bool
	width       int
	height      int

	keymap Keymap

	// today is injected for deterministic tests.
	today func() time.Time
}

// NewApp creates the application model around an opened store.
func NewApp(store *checklist.Store, cfg *config.Config) *App {
	input := textinput.New()
	input.CharLimit = 256

	keymap := DefaultKeymap()
	if !cfg.UI.VimMode {
		keymap = ArrowKeymap()
	}

	a := &App{
		store:  store,
		cfg:    cfg,
		input:  input,
		keymap: keymap,
		today:  time.Now,
	}
	a.refreshRows()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.cfg.UI.NotifyOverdue {
		if cmd := notifyOverdueCmd(a.store.Document(), a.today()); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// visibleSections returns the projection currently on screen. While a
// move is in progress the dragged section shows the pending order.
func (a *App) visibleSections() []checklist.Section {
	secs := checklist.Filter(a.store.Document(), a.query, a.filter, a.today())
	if a.mode == modeMove && a.drag.Active() {
		secID, from := a.drag.Source()
		for i := range secs {
			if secs[i].ID == secID {
				secs[i].Items = previewMove(secs[i].Items, from, a.dragTo)
			}
		}
	}
	return secs
}

// refreshRows rebuilds the flattened body after any change and keeps
// the cursor in range.
func (a *App) refreshRows() {
	a.rows = buildRows(a.visibleSections())
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// currentRow returns the row under the cursor, or nil when the body
// is empty.
func (a *App) currentRow() *row {
	if len(a.rows) == 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return &a.rows[a.cursor]
}

// moveCursorTo puts the cursor on the row for the given item (or
// section header when itemID is empty).
func (a *App) moveCursorTo(sectionID, itemID string) {
	for i := range a.rows {
		r := &a.rows[i]
		if r.sectionID != sectionID {
			continue
		}
		if itemID == "" && r.kind == rowSection {
			a.cursor = i
			return
		}
		if itemID != "" && r.itemID == itemID {
			a.cursor = i
			return
		}
	}
}

// setStatus shows a transient status line and schedules its dismissal.
func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	a.statusIsErr = false
	return clearStatusCmd()
}

// setError shows a transient error status line.
func (a *App) setError(msg string) tea.Cmd {
	a.statusMsg = msg
	a.statusIsErr = true
	return clearStatusCmd()
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
