package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// MarkReadyCommand asks to mark an order as assembled and waiting for
// collection, regardless of how much of its checklist is ticked.
type MarkReadyCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewMarkReadyCommand(orderID int64) (MarkReadyCommand, error) {
	command := &MarkReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkReadyCommand{}, err
	}

	return *command, nil
}

func (m *MarkReadyCommand) OrderID() int64 {
	return m.orderID
}

func (m *MarkReadyCommand) Validate() error {
	return m.guard.Validate(errs.NewValueIsInvalidError("MarkReadyCommand"))
}

func (m *MarkReadyCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	m.orderID = orderID

	return nil
}
