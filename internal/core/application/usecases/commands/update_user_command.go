package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// UpdateUserCommand asks to replace a user's role, cohort, and delivery
// capability. Username and display name are fixed at creation.
type UpdateUserCommand struct {
	userID     kernel.UUID
	role       user.Role
	cohort     string
	isDelivery bool

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(userID kernel.UUID, role user.Role, cohort string,
	isDelivery bool) (UpdateUserCommand, error) {
	var err error

	command := &UpdateUserCommand{
		cohort:     cohort,
		isDelivery: isDelivery,
		guard:      guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setUserID(userID),
		command.setRole(role),
	)
	if err != nil {
		return UpdateUserCommand{}, err
	}

	return *command, nil
}

func (u *UpdateUserCommand) UserID() kernel.UUID {
	return u.userID
}

func (u *UpdateUserCommand) Role() user.Role {
	return u.role
}

func (u *UpdateUserCommand) Cohort() string {
	return u.cohort
}

func (u *UpdateUserCommand) IsDelivery() bool {
	return u.isDelivery
}

func (u *UpdateUserCommand) Validate() error {
	return u.guard.Validate(errs.NewValueIsInvalidError("UpdateUserCommand"))
}

func (u *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	u.userID = userID

	return nil
}

func (u *UpdateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("role", err)
	}
	u.role = role

	return nil
}
