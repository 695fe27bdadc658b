package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/accordion/internal/catalog"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	cat := catalog.Builtin()
	before := time.Now()
	s.Update(&cat, nil)

	snap := s.Snapshot()
	if !snap.HasCatalog || snap.Catalog.Len() != cat.Len() {
		t.Fatalf("snapshot catalog = %d items, want %d", snap.Catalog.Len(), cat.Len())
	}
	if snap.Version != 1 {
		t.Fatalf("Version = %d, want 1", snap.Version)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Catalog.Aisles[0].Items[0].Title = "Mutated"
	cat.Aisles[0].Items[1].Title = "Mutated"
	snap2 := s.Snapshot()
	if got := snap2.Catalog.Aisles[0].Items[0].Title; got != "Banana" {
		t.Fatalf("Snapshot should clone catalog; got %q want Banana", got)
	}
	if got := snap2.Catalog.Aisles[0].Items[1].Title; got != "Cherry" {
		t.Fatalf("Update should clone catalog; got %q want Cherry", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	cat := catalog.Builtin()
	s.Update(&cat, nil)

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if !snap.HasCatalog || snap.Catalog.Len() != cat.Len() {
		t.Fatalf("catalog changed on error: %d items", snap.Catalog.Len())
	}
	if snap.Version != 1 {
		t.Fatalf("Version = %d after error, want 1", snap.Version)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError does not wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsStale() {
		t.Fatal("IsStale() = true, want false with 0 failures")
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsStale() {
		t.Fatalf("after 1 failure: failures=%d stale=%v, want 1 false", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); !snap.IsStale() {
		t.Fatal("IsStale() = false, want true with 2 failures")
	}

	cat := catalog.Builtin()
	s.Update(&cat, nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("after success: failures=%d stale=%v, want 0 false", snap.ConsecutiveFailures, snap.IsStale())
	}
}
