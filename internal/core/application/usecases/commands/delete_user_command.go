package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// DeleteUserCommand asks to remove a user from the roster. Their eligibility
// flag goes with them; their delivered orders stay in the ledger.
type DeleteUserCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	command := &DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return *command, nil
}

func (d *DeleteUserCommand) UserID() kernel.UUID {
	return d.userID
}

func (d *DeleteUserCommand) Validate() error {
	return d.guard.Validate(errs.NewValueIsInvalidError("DeleteUserCommand"))
}

func (d *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	d.userID = userID

	return nil
}
