package accordion

// Lookup answers questions about the current dataset on behalf of a
// Coordinator. A nil function behaves as if the dataset were empty.
type Lookup[S, R comparable] struct {
	RowsInSection func(S) []R
	SectionExists func(S) bool
	RowExists     func(R) bool
}

// Coordinator combines section visibility and row selection and keeps the
// single-selection invariant when selections cross collapsed sections.
type Coordinator[S, R comparable] struct {
	lookup   Lookup[S, R]
	sections SectionTracker[S]
	rows     RowTracker[R]
}

// NewCoordinator returns a Coordinator that consults lookup for dataset
// membership.
func NewCoordinator[S, R comparable](lookup Lookup[S, R]) *Coordinator[S, R] {
	return &Coordinator[S, R]{lookup: lookup}
}

// Visibility returns the visibility of section.
func (c *Coordinator[S, R]) Visibility(section S) Visibility {
	return c.sections.Visibility(section)
}

// ToggleVisibility flips section between collapsed and expanded and returns
// the new visibility.
func (c *Coordinator[S, R]) ToggleVisibility(section S) Visibility {
	next := c.sections.Visibility(section).Toggle()
	c.sections.SetVisibility(section, next)
	return next
}

// CollapsedSections returns the tracked collapsed sections.
func (c *Coordinator[S, R]) CollapsedSections() []S {
	return c.sections.CollapsedSections()
}

// IsSelected reports whether row is marked selected.
func (c *Coordinator[S, R]) IsSelected(row R) bool {
	return c.rows.IsSelected(row)
}

// SelectedRow returns the selected row, if any.
func (c *Coordinator[S, R]) SelectedRow() (R, bool) {
	return c.rows.SelectedRow()
}

// MarkSelected records row as selected without touching any other row. Use it
// for selection changes the host view already performed.
func (c *Coordinator[S, R]) MarkSelected(row R) {
	c.rows.SetSelected(row, true)
}

// MarkDeselected clears the selection mark of row.
func (c *Coordinator[S, R]) MarkDeselected(row R) {
	c.rows.SetSelected(row, false)
}

// ToggleSelection flips the selection of row and reports whether it ends up
// selected.
//
// Deselecting a previous selection that is still visible is left to the host
// view, which does so itself in single-selection mode and reports it through
// MarkDeselected. A previous selection inside a collapsed section is not
// visible to the host and gets no such signal, so it is cleared here.
func (c *Coordinator[S, R]) ToggleSelection(row R) bool {
	if c.rows.IsSelected(row) {
		c.rows.SetSelected(row, false)
		return false
	}

	c.rows.SetSelected(row, true)
	for _, hidden := range c.selectedInCollapsed(row) {
		c.rows.SetSelected(hidden, false)
	}
	return true
}

// selectedInCollapsed returns the rows other than except that are marked
// selected and sit inside a collapsed section.
func (c *Coordinator[S, R]) selectedInCollapsed(except R) []R {
	if c.lookup.RowsInSection == nil || c.rows.Len() == 0 {
		return nil
	}
	var hidden []R
	for _, section := range c.sections.CollapsedSections() {
		for _, row := range c.lookup.RowsInSection(section) {
			if row != except && c.rows.IsSelected(row) {
				hidden = append(hidden, row)
			}
		}
	}
	return hidden
}

// Clean drops visibility and selection state for keys that no longer exist.
// Call it after every dataset replacement, before the next snapshot is built.
func (c *Coordinator[S, R]) Clean() {
	c.rows.Prune(c.lookup.RowExists)
	c.sections.Prune(c.lookup.SectionExists)
}
