package tui

import "github.com/checkit/checkit/internal/checklist"

// rowKind distinguishes section headers from items in the flattened
// checklist body.
type rowKind int

const (
	rowSection rowKind = iota
	rowItem
)

// row is one navigable line of the checklist body. Item rows carry a
// copy of the projected item and its index within the projected
// section, which equals the real index when no filter is active.
type row struct {
	kind        rowKind
	sectionID   string
	sectionName string
	itemID      string
	itemIndex   int
	item        checklist.Item
}

// buildRows flattens a filtered projection into rows: each section
// header followed by its items.
func buildRows(secs []checklist.Section) []row {
	var rows []row
	for _, sec := range secs {
		rows = append(rows, row{
			kind:        rowSection,
			sectionID:   sec.ID,
			sectionName: sec.Name,
		})
		for i, it := range sec.Items {
			rows = append(rows, row{
				kind:        rowItem,
				sectionID:   sec.ID,
				sectionName: sec.Name,
				itemID:      it.ID,
				itemIndex:   i,
				item:        it,
			})
		}
	}
	return rows
}

// previewMove returns a copy of items with the element at from shown
// at to, without touching the source. Used to render the pending
// order while a move is in progress.
func previewMove(items []checklist.Item, from, to int) []checklist.Item {
	out := make([]checklist.Item, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out
	}
	from = clampIndex(from, len(out)-1)
	to = clampIndex(to, len(out)-1)
	if from == to {
		return out
	}
	it := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]checklist.Item{it}, out[to:]...)...)
	return out
}

func clampIndex(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
