package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/checkit/checkit/internal/checklist"
	"github.com/checkit/checkit/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder
	today := a.today()
	doc := a.store.Document()

	width := a.width
	if width == 0 {
		width = 80
	}

	// Header
	b.WriteString(styles.Title.Render(doc.Title))
	b.WriteString("\n")
	t := doc.Totals(today)
	b.WriteString(styles.TotalsLine.Render(
		fmt.Sprintf("%d/%d done · %d left · %d overdue", t.Done, t.Total, t.Left, t.Overdue)))
	b.WriteString("\n\n")

	// Body
	draggedID := ""
	if a.mode == modeMove && a.drag.Active() {
		secID, from := a.drag.Source()
		if sec := doc.Section(secID); sec != nil && len(sec.Items) > 0 {
			draggedID = sec.Items[clampIndex(from, len(sec.Items)-1)].ID
		}
	}

	for i, r := range a.rows {
		selected := i == a.cursor
		switch r.kind {
		case rowSection:
			label := r.sectionName
			if sec := doc.Section(r.sectionID); sec != nil {
				st := sec.Totals(today)
				label = fmt.Sprintf("%s  %s", r.sectionName,
					styles.SectionTotals.Render(fmt.Sprintf("(%d/%d)", st.Done, st.Total)))
			}
			if selected {
				b.WriteString(styles.SectionSelected.Render("▸ ") + label)
			} else {
				b.WriteString(styles.SectionName.Render("▸ ") + label)
			}

		case rowItem:
			box := "[ ]"
			if r.item.Done {
				box = "[x]"
			}
			line := box + " " + truncate(r.item.Text, width-16)
			if badge := dueBadge(&r.item, today); badge != "" {
				line += "  " + badge
			}
			switch {
			case r.itemID == draggedID && draggedID != "":
				b.WriteString(styles.ItemMoving.Render("↕ " + line))
			case selected:
				b.WriteString(styles.ItemSelected.Render(line))
			case r.item.Done:
				b.WriteString(styles.ItemDone.Render(line))
			default:
				b.WriteString(styles.Item.Render(line))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Input line
	if prompt := a.inputPrompt(); prompt != "" {
		b.WriteString(styles.InputPrompt.Render(prompt) + " " + a.input.View())
		b.WriteString("\n")
	}

	// Footer
	b.WriteString(a.footerView())
	return styles.App.Render(b.String())
}

// dueBadge renders the colored due-date marker for an item.
func dueBadge(it *checklist.Item, today time.Time) string {
	if it.DueDate == "" {
		return ""
	}
	label := "(due " + it.DueDisplay(today) + ")"
	switch {
	case it.IsOverdue(today):
		return styles.DueOverdue.Render(label)
	case it.IsDueToday(today):
		return styles.DueToday.Render(label)
	default:
		return styles.DueLater.Render(label)
	}
}

// inputPrompt names the field being edited, or "" in normal mode.
func (a *App) inputPrompt() string {
	switch a.mode {
	case modeEditItem:
		return "Item:"
	case modeEditDue:
		return "Due:"
	case modeEditSection:
		return "Section:"
	case modeEditTitle:
		return "Title:"
	case modeSearch:
		return "Search:"
	default:
		return ""
	}
}

func (a *App) footerView() string {
	var parts []string

	info := "filter: " + a.filter.String()
	if a.query != "" {
		info += fmt.Sprintf(" · search: %q", a.query)
	}
	parts = append(parts, styles.FilterInfo.Render(info))

	if a.statusMsg != "" {
		if a.statusIsErr {
			parts = append(parts, styles.StatusError.Render(a.statusMsg))
		} else {
			parts = append(parts, styles.Status.Render(a.statusMsg))
		}
	}

	parts = append(parts, a.helpView())
	return strings.Join(parts, "\n")
}

// helpView renders the one-line hint, or the full key listing when
// toggled.
func (a *App) helpView() string {
	km := a.keymap
	if a.mode == modeMove {
		return styles.Help.Render(fmt.Sprintf(
			"%s/%s choose position · %s drop · %s cancel",
			km.Down.Key, km.Up.Key, km.Select.Key, km.Back.Key))
	}
	if !a.showHelp {
		return styles.Help.Render(fmt.Sprintf(
			"%s/%s navigate · %s toggle · %s add · %s more",
			km.Down.Key, km.Up.Key, km.ToggleDone.Key, km.AddItem.Key, km.Help.Key))
	}

	keys := []Key{
		km.Up, km.Down, km.Top, km.Bottom,
		km.ToggleDone, km.AddItem, km.Edit, km.EditDue, km.Delete, km.Move,
		km.AddSection, km.EditTitle, km.ClearDone,
		km.Filter, km.Search, km.Yank, km.Help, km.Quit,
	}
	var lines []string
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-6s %s", k.Key, k.Help))
	}
	return styles.Help.Render(strings.Join(lines, "\n"))
}

// truncate shortens s to the given display width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
