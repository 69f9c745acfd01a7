package commands

import (
	"context"
	"errors"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
)

// maxTransientAttempts bounds how often a handler replays its transaction
// after storage contention before surfacing the failure. Guard failures
// (Forbidden, Conflict, NotFound, Invalid) are never retried.
const maxTransientAttempts = 3

// transientRetryBackoff is the base delay between attempts; attempt n waits
// n times this long.
const transientRetryBackoff = 50 * time.Millisecond

// withTransientRetry runs fn up to maxTransientAttempts times, retrying only
// when the failure unwraps to errs.ErrTransient. fn must create its own unit
// of work so every attempt replays against a fresh transaction.
func withTransientRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxTransientAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, errs.ErrTransient) {
			return err
		}
		if attempt == maxTransientAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * transientRetryBackoff):
		}
	}
	return err
}
