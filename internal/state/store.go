package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/accordion/internal/catalog"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Catalog             catalog.Catalog
	HasCatalog          bool
	Version             uint64 // bumped on every successful update
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale reports whether the last two or more loads failed.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous
// catalog is kept but the error is recorded for display.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if cat != nil {
		s.snapshot.Catalog = cat.Clone()
		s.snapshot.HasCatalog = true
	} else {
		s.snapshot.Catalog = catalog.Catalog{}
		s.snapshot.HasCatalog = false
	}
	s.snapshot.Version++
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = s.snapshot.Catalog.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
