package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// CollectOrderCommand asks to hand a ready order to a courier.
type CollectOrderCommand struct {
	orderID   int64
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCollectOrderCommand(orderID int64, courierID kernel.UUID) (CollectOrderCommand, error) {
	var err error

	command := &CollectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	)
	if err != nil {
		return CollectOrderCommand{}, err
	}

	return *command, nil
}

func (c *CollectOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CollectOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *CollectOrderCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("CollectOrderCommand"))
}

func (c *CollectOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID

	return nil
}

func (c *CollectOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	c.courierID = courierID

	return nil
}
