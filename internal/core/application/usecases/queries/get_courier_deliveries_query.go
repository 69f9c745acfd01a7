package queries

import (
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// GetCourierDeliveriesQuery retrieves the orders a courier is carrying right
// now: collected by them and not yet delivered.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(errs.NewValueIsInvalidError("GetCourierDeliveriesQuery"))
}

// GetCourierDeliveriesQueryResponse is one order on a courier's run.
type GetCourierDeliveriesQueryResponse struct {
	ID           int64
	Sequence     int
	Username     string
	UserName     string
	Instructions string
	CollectedAt  time.Time
}
