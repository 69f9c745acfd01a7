package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// DeliverOrderCommand asks to complete an order's delivery and reopen the
// owner's ordering eligibility.
type DeliverOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID int64) (DeliverOrderCommand, error) {
	command := &DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return *command, nil
}

func (d *DeliverOrderCommand) OrderID() int64 {
	return d.orderID
}

func (d *DeliverOrderCommand) Validate() error {
	return d.guard.Validate(errs.NewValueIsInvalidError("DeliverOrderCommand"))
}

func (d *DeliverOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	d.orderID = orderID

	return nil
}
