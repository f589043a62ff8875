package reps

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
)

// SyncState fetches every external record for one state from both sources
// and reconciles them into the store. The two sources are independent: a
// failure in one still reconciles the other, and individual record failures
// are absorbed by the reconciler.
func SyncState(ctx context.Context, state State) error {
	var firstErr error

	for _, p := range []provider.RepProvider{FederalProvider, StateProvider} {
		if p == nil {
			continue
		}

		start := time.Now()
		records, err := p.FetchByState(ctx, state.Abbr)
		if err != nil {
			provider.LogError(p.Name(), "fetch by state", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s fetch for %s: %w", p.Name(), state.Abbr, err)
			}
			continue
		}

		res := Reconcile(ctx, records, state)
		provider.LogReconcile(p.Name(), res.Created, res.Updated, res.Failed, time.Since(start))
	}

	return firstErr
}

// SyncAll runs SyncState for every state in the store, in abbreviation
// order. Per-state failures are logged and the sweep continues.
func SyncAll(ctx context.Context) error {
	states, err := AllStates(ctx)
	if err != nil {
		return err
	}

	var failures int
	for _, state := range states {
		if err := SyncState(ctx, state); err != nil {
			log.Printf("[sync] state %s: %v", state.Abbr, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("sync finished with %d state(s) failing", failures)
	}
	return nil
}
