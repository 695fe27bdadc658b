// Package state shares the latest catalog between the loader goroutine and
// the UI.
//
// # Overview
//
// The reload poller produces catalogs; the UI consumes them on its own tick.
// Store sits between the two:
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────┐            ┌──────────────────┐
//	│ source.Fetch() │            │ tick             │
//	│      ↓         │            │      ↓           │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	│      ↓         │  (mutex)   │      ↓           │
//	│  repeat...     │            │ Controller.Update│
//	└────────────────┘            └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace the catalog and bump Version
//	store.Update(&cat, nil)
//
//	// Error: keep the old catalog, record the error
//	store.Update(nil, err)
//
// The UI compares Version with the last one it rendered and only hands a
// new dataset to the accordion controller when it changed. Failed loads
// never clear what is on screen.
//
// # Defensive Copying
//
// Update and Snapshot deep-copy the catalog, so neither side can mutate
// what the other holds. Errors are wrapped on the way out.
//
// The zero Store is ready to use.
package state
