// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the checklist title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// TotalsLine is the aggregate counts under the title
	TotalsLine = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Section styles
var (
	SectionName = lipgloss.NewStyle().
			Bold(true)

	SectionSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	SectionTotals = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Item styles
var (
	// Item is the base style for a checklist item
	Item = lipgloss.NewStyle().
		PaddingLeft(2)

	// ItemSelected is the style for the item under the cursor
	ItemSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// ItemDone is the style for completed items
	ItemDone = lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true).
			Strikethrough(true)

	// ItemMoving marks the item being dragged in move mode
	ItemMoving = lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(WarningColor)
)

// Due date badges
var (
	DueOverdue = lipgloss.NewStyle().
			Foreground(ErrorColor)

	DueToday = lipgloss.NewStyle().
			Foreground(WarningColor)

	DueLater = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Footer styles
var (
	Status = lipgloss.NewStyle().
		Foreground(SuccessColor)

	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	FilterInfo = lipgloss.NewStyle().
			Foreground(Subtle)

	Help = lipgloss.NewStyle().
		Foreground(Subtle)

	InputPrompt = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)
)
