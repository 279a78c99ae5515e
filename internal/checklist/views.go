package checklist

import (
	"strings"
	"time"
)

// Totals are aggregate counts derived from the document. They are
// never stored; every read recomputes them from scratch.
type Totals struct {
	Total   int
	Done    int
	Left    int
	Overdue int
}

func (t Totals) add(it *Item, today time.Time) Totals {
	t.Total++
	if it.Done {
		t.Done++
	} else {
		t.Left++
	}
	if it.IsOverdue(today) {
		t.Overdue++
	}
	return t
}

// Totals scans every item in every section once.
func (d *Document) Totals(today time.Time) Totals {
	var t Totals
	for i := range d.Sections {
		for j := range d.Sections[i].Items {
			t = t.add(&d.Sections[i].Items[j], today)
		}
	}
	return t
}

// Totals scans the section's items once.
func (s *Section) Totals(today time.Time) Totals {
	var t Totals
	for i := range s.Items {
		t = t.add(&s.Items[i], today)
	}
	return t
}

// FilterMode narrows the projected item list.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterToday
	FilterOverdue
)

// String implements fmt.Stringer for status display.
func (m FilterMode) String() string {
	switch m {
	case FilterToday:
		return "today"
	case FilterOverdue:
		return "overdue"
	default:
		return "all"
	}
}

// Next cycles all -> today -> overdue -> all.
func (m FilterMode) Next() FilterMode {
	switch m {
	case FilterAll:
		return FilterToday
	case FilterToday:
		return FilterOverdue
	default:
		return FilterAll
	}
}

// Filter projects the document through a search query and a filter
// mode. Every section is kept; its items are narrowed to those
// matching both the mode predicate and a case-insensitive substring
// match of query against the item text (an empty query matches
// everything). The projection copies item slices and never mutates
// the document; relative order is preserved.
func Filter(doc *Document, query string, mode FilterMode, today time.Time) []Section {
	q := strings.ToLower(query)
	out := make([]Section, 0, len(doc.Sections))
	for i := range doc.Sections {
		src := &doc.Sections[i]
		sec := Section{ID: src.ID, Name: src.Name, Items: []Item{}}
		for _, it := range src.Items {
			if !matchesMode(&it, mode, today) {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(it.Text), q) {
				continue
			}
			sec.Items = append(sec.Items, it)
		}
		out = append(out, sec)
	}
	return out
}

func matchesMode(it *Item, mode FilterMode, today time.Time) bool {
	switch mode {
	case FilterToday:
		return it.IsDueToday(today)
	case FilterOverdue:
		return it.IsOverdue(today)
	default:
		return true
	}
}
