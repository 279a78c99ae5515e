// Package tui provides the terminal user interface for checkit.
package tui

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Select Key
	Back   Key
	Quit   Key
	Help   Key

	// Item actions
	AddItem    Key
	Edit       Key
	EditDue    Key
	Delete     Key
	ToggleDone Key
	Move       Key

	// Section / document actions
	AddSection Key
	EditTitle  Key
	ClearDone  Key

	// Views
	Filter Key
	Search Key
	Yank   Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Select: Key{Key: "enter", Help: "select"},
		Back:   Key{Key: "esc", Help: "back"},
		Quit:   Key{Key: "q", Help: "quit"},
		Help:   Key{Key: "?", Help: "help"},

		AddItem:    Key{Key: "a", Help: "add item"},
		Edit:       Key{Key: "e", Help: "edit"},
		EditDue:    Key{Key: "t", Help: "due date"},
		Delete:     Key{Key: "d", Help: "delete"},
		ToggleDone: Key{Key: "x", Help: "toggle done"},
		Move:       Key{Key: "m", Help: "move item"},

		AddSection: Key{Key: "A", Help: "add section"},
		EditTitle:  Key{Key: "T", Help: "edit title"},
		ClearDone:  Key{Key: "c", Help: "clear done"},

		Filter: Key{Key: "f", Help: "cycle filter"},
		Search: Key{Key: "/", Help: "search"},
		Yank:   Key{Key: "y", Help: "copy summary"},
	}
}

// ArrowKeymap returns bindings for users without vim_mode: arrow keys
// for navigation, the same mnemonic letters for actions.
func ArrowKeymap() Keymap {
	km := DefaultKeymap()
	km.Up = Key{Key: "up", Help: "up"}
	km.Down = Key{Key: "down", Help: "down"}
	km.Top = Key{Key: "home", Help: "top"}
	km.Bottom = Key{Key: "end", Help: "bottom"}
	return km
}
