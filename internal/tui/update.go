package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/checkit/checkit/internal/checklist"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case statusClearMsg:
		a.statusMsg = ""
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeNormal:
			return a.updateNormal(msg)
		case modeMove:
			return a.updateMove(msg)
		case modeSearch:
			return a.updateSearch(msg)
		default:
			return a.updateEdit(msg)
		}
	}
	return a, nil
}

func (a *App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	doc := a.store.Document()

	switch key {
	case "ctrl+c", a.keymap.Quit.Key:
		return a, tea.Quit

	case a.keymap.Up.Key, "up":
		if a.cursor > 0 {
			a.cursor--
		}

	case a.keymap.Down.Key, "down":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case a.keymap.Top.Key:
		a.cursor = 0

	case a.keymap.Bottom.Key:
		a.cursor = len(a.rows) - 1
		if a.cursor < 0 {
			a.cursor = 0
		}

	case a.keymap.ToggleDone.Key, " ":
		if r := a.currentRow(); r != nil && r.kind == rowItem {
			a.store.ToggleDone(r.sectionID, r.itemID)
			a.refreshRows()
		}

	case a.keymap.AddItem.Key:
		secID := ""
		if r := a.currentRow(); r != nil {
			secID = r.sectionID
		} else if len(doc.Sections) > 0 {
			secID = doc.Sections[len(doc.Sections)-1].ID
		}
		it := a.store.AddItem(secID)
		if it == nil {
			return a, nil
		}
		// Drop search/filter so the new item is visible for editing.
		a.query = ""
		a.filter = checklist.FilterAll
		a.refreshRows()
		a.moveCursorTo(secID, it.ID)
		a.editSectionID, a.editItemID = secID, it.ID
		return a, a.startInput(modeEditItem, it.Text, "item text")

	case a.keymap.AddSection.Key:
		sec := a.store.AddSection()
		a.query = ""
		a.filter = checklist.FilterAll
		a.refreshRows()
		a.moveCursorTo(sec.ID, "")
		a.editSectionID = sec.ID
		return a, a.startInput(modeEditSection, sec.Name, "section name")

	case a.keymap.Edit.Key, a.keymap.Select.Key:
		r := a.currentRow()
		if r == nil {
			return a, nil
		}
		a.editSectionID = r.sectionID
		if r.kind == rowItem {
			a.editItemID = r.itemID
			return a, a.startInput(modeEditItem, r.item.Text, "item text")
		}
		return a, a.startInput(modeEditSection, r.sectionName, "section name")

	case a.keymap.EditDue.Key:
		if r := a.currentRow(); r != nil && r.kind == rowItem {
			a.editSectionID, a.editItemID = r.sectionID, r.itemID
			return a, a.startInput(modeEditDue, r.item.DueDate, "YYYY-MM-DD")
		}

	case a.keymap.EditTitle.Key:
		return a, a.startInput(modeEditTitle, doc.Title, "title")

	case a.keymap.Delete.Key:
		r := a.currentRow()
		if r == nil {
			return a, nil
		}
		if r.kind == rowItem {
			a.store.DeleteItem(r.sectionID, r.itemID)
			a.refreshRows()
			return a, nil
		}
		if err := a.store.DeleteSection(r.sectionID); err != nil {
			if errors.Is(err, checklist.ErrLastSection) {
				return a, a.setError("Cannot delete the last section")
			}
			return a, a.setError(err.Error())
		}
		a.refreshRows()

	case a.keymap.ClearDone.Key:
		a.store.ClearDone()
		a.refreshRows()
		return a, a.setStatus("Cleared completed items")

	case a.keymap.Filter.Key:
		a.filter = a.filter.Next()
		a.refreshRows()

	case a.keymap.Search.Key:
		return a, a.startInput(modeSearch, a.query, "search")

	case a.keymap.Move.Key:
		r := a.currentRow()
		if r == nil || r.kind != rowItem {
			return a, nil
		}
		// Projected indices only match document indices on the
		// unfiltered view.
		if a.filter != checklist.FilterAll || a.query != "" {
			return a, a.setError("Clear search and filters before moving items")
		}
		a.drag.Begin(r.sectionID, r.itemIndex)
		a.dragTo = r.itemIndex
		a.mode = modeMove

	case a.keymap.Yank.Key:
		text := checklist.Summary(doc, a.today())
		if err := clipboard.WriteAll(text); err != nil {
			return a, a.setError("Clipboard unavailable")
		}
		return a, a.setStatus("Summary copied to clipboard")

	case a.keymap.Help.Key:
		a.showHelp = !a.showHelp
	}

	return a, nil
}

func (a *App) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	secID, from := a.drag.Source()
	sec := a.store.Document().Section(secID)
	if sec == nil || len(sec.Items) == 0 {
		a.mode = modeNormal
		a.refreshRows()
		return a, nil
	}
	draggedID := sec.Items[clampIndex(from, len(sec.Items)-1)].ID

	switch msg.String() {
	case a.keymap.Up.Key, "up":
		a.dragTo = clampIndex(a.dragTo-1, len(sec.Items)-1)
		a.refreshRows()
		a.moveCursorTo(secID, draggedID)

	case a.keymap.Down.Key, "down":
		a.dragTo = clampIndex(a.dragTo+1, len(sec.Items)-1)
		a.refreshRows()
		a.moveCursorTo(secID, draggedID)

	case a.keymap.Select.Key:
		moved := a.drag.Drop(a.store, secID, a.dragTo)
		a.mode = modeNormal
		a.refreshRows()
		a.moveCursorTo(secID, draggedID)
		if moved {
			return a, a.setStatus("Item moved")
		}

	case a.keymap.Back.Key, "ctrl+c", a.keymap.Quit.Key:
		// Abandon the move; the stale drag is overwritten by the
		// next one.
		a.mode = modeNormal
		a.refreshRows()
		a.moveCursorTo(secID, draggedID)
	}

	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.mode = modeNormal
		a.input.Blur()
		return a, nil

	case "esc":
		a.mode = modeNormal
		a.query = ""
		a.input.Blur()
		a.refreshRows()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.query = a.input.Value()
	a.refreshRows()
	return a, cmd
}

func (a *App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a.commitInput()

	case "esc":
		a.mode = modeNormal
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// startInput switches into an input mode with the field prefilled.
func (a *App) startInput(m mode, value, placeholder string) tea.Cmd {
	a.mode = m
	a.input.Placeholder = placeholder
	a.input.SetValue(value)
	a.input.CursorEnd()
	return a.input.Focus()
}

// commitInput applies the entered value according to the active mode.
func (a *App) commitInput() (tea.Model, tea.Cmd) {
	value := a.input.Value()

	switch a.mode {
	case modeEditItem:
		text := value
		a.store.UpdateItem(a.editSectionID, a.editItemID, checklist.ItemPatch{Text: &text})

	case modeEditDue:
		due := strings.TrimSpace(value)
		if !validDueDate(due) {
			return a, a.setError("Invalid date, use YYYY-MM-DD")
		}
		a.store.UpdateItem(a.editSectionID, a.editItemID, checklist.ItemPatch{DueDate: &due})

	case modeEditSection:
		a.store.RenameSection(a.editSectionID, value)

	case modeEditTitle:
		a.store.SetTitle(value)
	}

	a.mode = modeNormal
	a.input.Blur()
	a.refreshRows()
	return a, nil
}

// validDueDate accepts an empty string or a YYYY-MM-DD calendar date.
func validDueDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(checklist.DateFormat, s)
	return err == nil
}
