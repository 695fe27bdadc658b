// Package ui provides the Bubble Tea terminal interface for the accordion
// list.
//
// # Architecture Overview
//
// The package owns the host side of an accordion.Controller. listView
// implements accordion.HostView and accordion.HeaderObserver: it keeps the
// rendered snapshot, the visual selection and the header indicators, and turns
// deferred work (render completion, header transitions) into tea commands.
// Model is the tea.Model that owns the cursor, keys, theme and viewport.
//
// # Event Flow
//
//  1. A tick reads the latest state.Snapshot from the store.
//  2. A new catalog version is passed to Controller.Update unless a previous
//     update is still rendering; the completion message clears the flag.
//  3. Render rebuilds the lines and replays RowWillDisplay so the persisted
//     selection is re-marked.
//  4. Keys call HeaderTapped, RowSelected, RowDeselected or
//     DeselectSelectedRow, and the queued commands are returned from Update.
//
// All controller calls happen on the Bubble Tea goroutine.
//
// # Key Bindings
//
//   - j/k, g/G, ctrl+d/u: Move the cursor
//   - enter or Space: Select the item (toggles a department on a header)
//   - tab or o: Collapse/expand the department under the cursor
//   - x: Clear the selection
//   - s: Jump to the selected item
//   - r: Reload a random sample of the catalog
//   - c: Toggle item counts
//   - T: Cycle theme
//   - h/?: Toggle help
//   - q or Ctrl+C: Quit
package ui
