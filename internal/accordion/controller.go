package accordion

import (
	"sync"
	"time"
)

// DefaultAnimationDuration is how long header and row transitions take when a
// section is toggled.
const DefaultAnimationDuration = 200 * time.Millisecond

// Options configure a Controller.
type Options[S comparable] struct {
	AnimationDuration time.Duration // zero uses DefaultAnimationDuration
	Headers           HeaderObserver[S]
}

// Controller owns the current dataset and the accordion state for one list
// view. It is not safe for concurrent use; call it from the goroutine that
// owns the view.
type Controller[S, R comparable] struct {
	host      HostView[S, R]
	headers   HeaderObserver[S]
	animation time.Duration

	data  Dataset[S, R]
	state *Coordinator[S, R]
}

var _ EventSink[string, string] = (*Controller[string, string])(nil)

// New returns a Controller with an empty dataset. A nil host is allowed; the
// controller then tracks state without rendering.
func New[S, R comparable](host HostView[S, R], opts Options[S]) *Controller[S, R] {
	c := &Controller[S, R]{
		host:      host,
		headers:   opts.Headers,
		animation: opts.AnimationDuration,
	}
	if c.animation <= 0 {
		c.animation = DefaultAnimationDuration
	}
	c.state = NewCoordinator(Lookup[S, R]{
		RowsInSection: c.rowsInSection,
		SectionExists: c.sectionExists,
		RowExists:     c.rowExists,
	})
	return c
}

func (c *Controller[S, R]) rowsInSection(section S) []R { return c.data.Rows(section) }
func (c *Controller[S, R]) sectionExists(section S) bool { return c.data.HasSection(section) }
func (c *Controller[S, R]) rowExists(row R) bool        { return c.data.HasRow(row) }

// AnimationDuration returns the transition duration used for header taps.
func (c *Controller[S, R]) AnimationDuration() time.Duration {
	return c.animation
}

// Update replaces the dataset, drops state for keys that disappeared and
// renders the new snapshot. onComplete runs once after the host finishes.
// Callers must not start another Update before onComplete has run.
func (c *Controller[S, R]) Update(data Dataset[S, R], animated bool, onComplete func()) {
	c.data = data
	c.state.Clean()
	c.render(animated, onComplete)
}

// Dataset returns the current dataset.
func (c *Controller[S, R]) Dataset() Dataset[S, R] {
	return c.data
}

// VisibleSnapshot builds the snapshot for the current dataset and visibility
// state.
func (c *Controller[S, R]) VisibleSnapshot() Snapshot[S, R] {
	return buildSnapshot(c.data, c.state.Visibility)
}

// SelectedRow returns the row in the selected state. The host's visual
// selection should agree with it.
func (c *Controller[S, R]) SelectedRow() (R, bool) {
	return c.state.SelectedRow()
}

// SelectedPosition returns where the selected row is visible. It reports
// false when nothing is selected or the selected row is collapsed away.
func (c *Controller[S, R]) SelectedPosition() (Position, bool) {
	row, ok := c.state.SelectedRow()
	if !ok || c.host == nil {
		return Position{}, false
	}
	return c.host.PositionOf(row)
}

// Visibility returns the visibility of section.
func (c *Controller[S, R]) Visibility(section S) Visibility {
	return c.state.Visibility(section)
}

// Header returns the section at index in the visible snapshot with its
// visibility, and tells the header observer to show it without animation.
func (c *Controller[S, R]) Header(index int) (S, Visibility, bool) {
	var zero S
	if index < 0 || index >= c.data.Len() {
		return zero, Expanded, false
	}
	section := c.data.groups[index].Section
	v := c.state.Visibility(section)
	if c.headers != nil {
		c.headers.VisibilityChanged(section, v, 0)
	}
	return section, v, true
}

// RowWillDisplay re-marks row as selected in the host when it scrolls or
// expands into view.
func (c *Controller[S, R]) RowWillDisplay(row R) {
	if c.host == nil || !c.state.IsSelected(row) {
		return
	}
	if pos, ok := c.host.PositionOf(row); ok {
		c.host.SelectAt(pos)
	}
}

// RowSelected toggles the selection of a row the user picked and reports its
// new state. ok is false when the host has no visible position for row, or the
// item at that position is a different row, which can happen while an
// animation is still settling.
func (c *Controller[S, R]) RowSelected(row R) (selected, ok bool) {
	pos, ok := c.visiblePosition(row)
	if !ok {
		return false, false
	}
	selected = c.state.ToggleSelection(row)
	if !selected {
		c.host.DeselectAt(pos)
	}
	return selected, true
}

// RowDeselected records a deselection the host performed itself.
func (c *Controller[S, R]) RowDeselected(row R) {
	c.state.MarkDeselected(row)
}

// HeaderTapped collapses or expands section and renders the change animated.
// Unknown sections are ignored.
func (c *Controller[S, R]) HeaderTapped(section S) {
	if !c.data.HasSection(section) {
		return
	}
	v := c.state.ToggleVisibility(section)
	if c.headers != nil {
		c.headers.VisibilityChanged(section, v, c.animation)
	}
	c.render(true, nil)
}

// SaveSelected marks row selected without toggling or repairing other rows.
func (c *Controller[S, R]) SaveSelected(row R) {
	c.state.MarkSelected(row)
}

// SaveDeselected clears the selection mark of row.
func (c *Controller[S, R]) SaveDeselected(row R) {
	c.state.MarkDeselected(row)
}

// SelectRow selects row programmatically, replacing any previous selection
// in both the state and the host.
func (c *Controller[S, R]) SelectRow(row R) bool {
	if !c.data.HasRow(row) {
		return false
	}
	if prev, ok := c.state.SelectedRow(); ok && prev != row {
		c.deselect(prev)
	}
	c.state.MarkSelected(row)
	if c.host != nil {
		if pos, ok := c.host.PositionOf(row); ok {
			c.host.SelectAt(pos)
		}
	}
	return true
}

// DeselectSelectedRow clears the current selection, if any.
func (c *Controller[S, R]) DeselectSelectedRow() {
	if row, ok := c.state.SelectedRow(); ok {
		c.deselect(row)
	}
}

// visiblePosition returns where the host shows row, checked in both
// directions of the host mapping.
func (c *Controller[S, R]) visiblePosition(row R) (Position, bool) {
	if c.host == nil {
		return Position{}, false
	}
	pos, ok := c.host.PositionOf(row)
	if !ok {
		return Position{}, false
	}
	if at, ok := c.host.ItemAt(pos); !ok || at != row {
		return Position{}, false
	}
	return pos, true
}

func (c *Controller[S, R]) deselect(row R) {
	c.state.MarkDeselected(row)
	if c.host == nil {
		return
	}
	if pos, ok := c.host.PositionOf(row); ok {
		c.host.DeselectAt(pos)
	}
}

func (c *Controller[S, R]) render(animated bool, onComplete func()) {
	done := once(onComplete)
	if c.host == nil {
		done()
		return
	}
	c.host.Render(c.VisibleSnapshot(), animated, done)
}

func once(fn func()) func() {
	var o sync.Once
	return func() {
		if fn != nil {
			o.Do(fn)
		}
	}
}
