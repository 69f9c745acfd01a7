// Package ports defines the contracts between the order workflow core and
// its infrastructure: repositories for each aggregate, the unit of work that
// scopes them to one transaction, and the change notifier the lifecycle
// engine fires after committed mutations.
package ports

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order ledger.
type OrderRepository interface {
	// Add appends a new order to the ledger and assigns its monotonic id
	// (written back onto the aggregate). Ids are increasing but not
	// necessarily gap-free.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and bookkeeping changes to an existing order.
	// Lines are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by ledger id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetActiveForUser retrieves the user's current non-delivered order,
	// or a NotFound error when the user has none. At most one exists; the
	// lifecycle engine guarantees that at placement.
	GetActiveForUser(ctx context.Context, userID kernel.UUID) (*order.Order, error)

	// CountDeliveredForUser counts the user's delivered orders. Used to
	// derive the display sequence of a new order.
	CountDeliveredForUser(ctx context.Context, userID kernel.UUID) (int64, error)

	// DeleteAll removes every order and its lines and resets the id
	// sequence, so the next appended order gets id 1. Admin bulk clear only.
	DeleteAll(ctx context.Context) error
}
