package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// StartPreparingCommand asks to move a pending order into preparation.
type StartPreparingCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewStartPreparingCommand(orderID int64) (StartPreparingCommand, error) {
	command := &StartPreparingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return StartPreparingCommand{}, err
	}

	return *command, nil
}

func (s *StartPreparingCommand) OrderID() int64 {
	return s.orderID
}

func (s *StartPreparingCommand) Validate() error {
	return s.guard.Validate(errs.NewValueIsInvalidError("StartPreparingCommand"))
}

func (s *StartPreparingCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	s.orderID = orderID

	return nil
}
