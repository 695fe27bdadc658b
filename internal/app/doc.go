// Package app is the composition root of the accordion list.
//
// Run loads the config file and preferences, routes the standard logger to a
// file, compiles the catalog filter and builds a catalog.Source. The first
// catalog is loaded into a state.Store before the UI starts; when a reload
// interval is configured, StartPoller keeps reloading it in the background,
// doubling the interval after each failure up to maxBackoff.
//
// The UI reads store snapshots on its own tick and hands new catalog versions
// to the accordion controller, so the poller never touches UI state.
//
// Fatal errors (returned from Run):
//   - Unreadable or invalid config file
//   - Filter expressions that do not compile
//   - A first load failure of an explicitly configured data file
//
// Later load failures are logged and shown in the status bar; the previous
// catalog stays on screen.
package app
