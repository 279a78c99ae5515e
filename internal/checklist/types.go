// Package checklist implements the checklist document model: sections
// of items with due dates, the mutation operations the UI drives it
// with, and the derived views computed from it.
package checklist

import "time"

// DateFormat is the calendar-date layout used for due dates.
// Due dates carry no time component.
const DateFormat = "2006-01-02"

// DefaultTitle is used when a document has no usable title.
const DefaultTitle = "Check-It"

// Document is the full checklist state: a title plus ordered sections.
type Document struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is a named, ordered group of items. The slice order is the
// display order.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is a single checklist entry. DueDate is either empty or a
// YYYY-MM-DD date string.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	DueDate string `json:"dueDate"`
}

// IsOverdue returns true if the item is not done and its due date is
// strictly before today. Items with no or unparseable due dates are
// never overdue.
func (it *Item) IsOverdue(today time.Time) bool {
	if it.Done || it.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateFormat, it.DueDate)
	if err != nil {
		return false
	}
	return due.Before(midnight(today))
}

// IsDueToday returns true if the item is not done and due exactly today.
func (it *Item) IsDueToday(today time.Time) bool {
	if it.Done || it.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateFormat, it.DueDate)
	if err != nil {
		return false
	}
	return due.Equal(midnight(today))
}

// DueDisplay returns a short human-readable due date string for list
// rendering.
func (it *Item) DueDisplay(today time.Time) string {
	if it.DueDate == "" {
		return ""
	}
	due, err := time.Parse(DateFormat, it.DueDate)
	if err != nil {
		return it.DueDate
	}
	diff := int(due.Sub(midnight(today)).Hours() / 24)
	switch {
	case diff < -1:
		return it.DueDate
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff < 7:
		return due.Weekday().String()
	default:
		return due.Format("Jan 2")
	}
}

// midnight truncates a time to the start of its calendar day in UTC,
// matching the date-only comparison semantics of DueDate strings.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Section returns the section with the given id, or nil.
func (d *Document) Section(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// Item returns the item with the given id within the section, or nil.
func (s *Section) Item(id string) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// itemIndex returns the position of the item with the given id, or -1.
func (s *Section) itemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Seed returns the initial document used when no persisted state
// exists: a single "General" section with one placeholder item.
func Seed() *Document {
	return &Document{
		Title: DefaultTitle,
		Sections: []Section{
			{
				ID:   NewID(),
				Name: "General",
				Items: []Item{
					{ID: NewID(), Text: "New item"},
				},
			},
		},
	}
}
