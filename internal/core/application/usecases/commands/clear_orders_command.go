package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// ClearOrdersCommand asks to wipe the whole order ledger and its checklist
// progress, resetting the id sequence. Admin only; eligibility flags are left
// untouched.
type ClearOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewClearOrdersCommand() (ClearOrdersCommand, error) {
	return ClearOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *ClearOrdersCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("ClearOrdersCommand"))
}
