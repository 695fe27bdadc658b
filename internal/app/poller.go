package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/accordion/internal/catalog"
	"github.com/five82/accordion/internal/state"
)

const maxBackoff = 30 * time.Second

// StartPoller launches a background goroutine that reloads the catalog into
// the store every interval, backing off while loads fail. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, source *catalog.Source, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			if err := refresh(store, source, false); err != nil {
				failures++
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// refresh fetches one catalog and records the outcome in the store.
func refresh(store *state.Store, source *catalog.Source, sample bool) error {
	cat, err := source.Fetch(sample)
	if err != nil {
		store.Update(nil, err)
		log.Printf("catalog load failed: %v", err)
		return err
	}
	store.Update(&cat, nil)
	return nil
}

// calculateBackoff doubles interval for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
