package queries

import (
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// DefaultDeliveredOrdersLimit caps the delivered-history view when the caller
// does not ask for a specific window.
const DefaultDeliveredOrdersLimit = 20

// GetDeliveredOrdersQuery retrieves the most recently delivered orders.
type GetDeliveredOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetDeliveredOrdersQuery creates a delivered-history query. A limit of
// zero or less falls back to DefaultDeliveredOrdersLimit.
func NewGetDeliveredOrdersQuery(limit int) GetDeliveredOrdersQuery {
	if limit <= 0 {
		limit = DefaultDeliveredOrdersLimit
	}

	return GetDeliveredOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

func (q GetDeliveredOrdersQuery) Limit() int {
	return q.limit
}

func (q GetDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(errs.NewValueIsInvalidError("GetDeliveredOrdersQuery"))
}

// GetDeliveredOrdersQueryResponse is one entry in the delivered history.
type GetDeliveredOrdersQueryResponse struct {
	ID              int64
	Sequence        int
	Username        string
	UserName        string
	CourierUsername string
	DeliveredAt     time.Time
}
