// Package accordion keeps collapsible-section and single-selection state for a
// sectioned list view.
//
// # Overview
//
// A list widget renders sections of rows. The widget's own state is transient:
// rows that scroll away or sit in a collapsed section are gone from the view,
// and the whole dataset may be replaced on every reload. This package keeps
// the state that has to survive those events, keyed by section and row
// identity rather than by position:
//
//   - which sections are collapsed (SectionTracker, default expanded)
//   - which row is selected (RowTracker)
//
// Coordinator combines both trackers and keeps at most one row selected.
// Controller is the facade a host view talks to: it owns the current Dataset,
// builds Snapshots for the view and turns view events into state changes.
//
// # Data Flow
//
//	host event (display row, select row, tap header)
//	      │
//	      ▼
//	 Controller ──> Coordinator ──> SectionTracker / RowTracker
//	      │
//	      └──> VisibleSnapshot() ──> HostView.Render()
//
//	dataset reload:
//	 Update(dataset) ──> Coordinator.Clean() ──> HostView.Render()
//
// # Snapshots
//
// A Snapshot lists every section in dataset order. Expanded sections carry
// their rows in order; collapsed sections carry none, but their headers stay
// so they can be expanded again.
//
// # Selection
//
// The host is expected to run in single-selection mode and to deselect a
// still-visible previous selection on its own (see HostView). A previous
// selection inside a collapsed section is invisible to the host, so
// Coordinator.ToggleSelection clears it when a new row is selected.
//
// # Keys
//
// Section and row keys are any comparable types. Row keys must be unique
// across the whole dataset, not only within their section; this is a caller
// precondition and is not checked. Unknown keys are never an error: queries
// return the default visibility or report ok=false.
//
// # Concurrency
//
// Nothing here locks. A Controller belongs to the goroutine that owns its
// view, and callers serialize Update calls by waiting for onComplete.
package accordion
