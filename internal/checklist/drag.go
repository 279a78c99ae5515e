package checklist

// Drag tracks an in-progress item drag. It has two states, idle and
// dragging; a drop always returns it to idle. A drag that never
// receives a drop simply stays pending until the next Begin
// overwrites it, which is harmless: a drop against a section the drag
// did not start in is a no-op.
type Drag struct {
	active    bool
	sectionID string
	fromIndex int
}

// Begin starts (or restarts) a drag from the item at fromIndex within
// the section.
func (d *Drag) Begin(sectionID string, fromIndex int) {
	d.active = true
	d.sectionID = sectionID
	d.fromIndex = fromIndex
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Source returns the section and index the current drag started from.
func (d *Drag) Source() (sectionID string, fromIndex int) {
	return d.sectionID, d.fromIndex
}

// Drop completes the drag at toIndex within targetSectionID and
// resets to idle. Cross-section drops are unsupported and do nothing.
// Returns true if the item order changed.
func (d *Drag) Drop(s *Store, targetSectionID string, toIndex int) bool {
	if !d.active {
		return false
	}
	sectionID, fromIndex := d.sectionID, d.fromIndex
	d.active = false
	d.sectionID = ""
	d.fromIndex = 0
	if targetSectionID != sectionID {
		return false
	}
	return s.ReorderItems(sectionID, fromIndex, toIndex)
}
