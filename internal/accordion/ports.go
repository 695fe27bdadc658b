package accordion

import "time"

// HostView is the list widget a Controller drives.
//
// Render applies snapshot, diffing against what is on screen, and must call
// done exactly once when the render and any animation have finished, also for
// an empty diff or when animated is false.
//
// The host runs in single-selection mode: when the user selects a row while a
// different row is still selected and visible, the host deselects the old row
// itself and reports it through EventSink.RowDeselected before reporting the
// new selection. The Controller only repairs selections the host cannot see.
//
// ItemAt and PositionOf must agree for every visible row; an event for a row
// whose lookups disagree is ignored.
type HostView[S, R comparable] interface {
	Render(snapshot Snapshot[S, R], animated bool, done func())
	ItemAt(pos Position) (R, bool)
	PositionOf(row R) (Position, bool)
	SelectAt(pos Position)
	DeselectAt(pos Position)
}

// EventSink receives input events from the host view, already translated
// from positions into keys.
type EventSink[S, R comparable] interface {
	RowWillDisplay(row R)
	RowSelected(row R) (selected, ok bool)
	RowDeselected(row R)
	HeaderTapped(section S)
	Visibility(section S) Visibility
}

// HeaderObserver is told how a section header should show its expand/collapse
// indicator. A zero duration means no animation.
type HeaderObserver[S comparable] interface {
	VisibilityChanged(section S, v Visibility, animation time.Duration)
}
