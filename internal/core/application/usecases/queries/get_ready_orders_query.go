package queries

import (
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// GetReadyOrdersQuery retrieves the orders waiting for a courier to collect.
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(errs.NewValueIsInvalidError("GetReadyOrdersQuery"))
}

// GetReadyOrdersQueryResponse is one order on the collection shelf.
type GetReadyOrdersQueryResponse struct {
	ID           int64
	Sequence     int
	Username     string
	UserName     string
	Instructions string
	CreatedAt    time.Time
}
