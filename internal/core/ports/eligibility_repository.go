package ports

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
)

// EligibilityRepository defines the persistence contract for the per-user
// "may order now" flag. A user with no row is closed; the flag is the single
// resolution path — cohort and global toggles are bulk writers over it, never
// a separate source of truth.
//
// When placement and bulk toggles run in the same window, the lock order is
// eligibility before ledger throughout the application layer.
type EligibilityRepository interface {
	// Get reports whether the user may place an order right now.
	// Unknown users are closed, not an error.
	Get(ctx context.Context, userID kernel.UUID) (bool, error)

	// Set opens or closes ordering for one user.
	Set(ctx context.Context, userID kernel.UUID, canOrder bool) error

	// SetForUsers opens or closes ordering for a batch of users in one
	// statement, so a cohort toggle commits atomically.
	SetForUsers(ctx context.Context, userIDs []kernel.UUID, canOrder bool) error

	// Delete removes a user's flag, used when the user leaves the roster.
	Delete(ctx context.Context, userID kernel.UUID) error
}
