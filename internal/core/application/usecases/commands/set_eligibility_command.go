package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// SetEligibilityCommand opens or closes the ordering window for one user.
type SetEligibilityCommand struct {
	userID   kernel.UUID
	canOrder bool

	guard guard.ConstructorGuard
}

func NewSetEligibilityCommand(userID kernel.UUID, canOrder bool) (SetEligibilityCommand, error) {
	command := &SetEligibilityCommand{
		canOrder: canOrder,
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return SetEligibilityCommand{}, err
	}

	return *command, nil
}

func (s *SetEligibilityCommand) UserID() kernel.UUID {
	return s.userID
}

func (s *SetEligibilityCommand) CanOrder() bool {
	return s.canOrder
}

func (s *SetEligibilityCommand) Validate() error {
	return s.guard.Validate(errs.NewValueIsInvalidError("SetEligibilityCommand"))
}

func (s *SetEligibilityCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	s.userID = userID

	return nil
}
