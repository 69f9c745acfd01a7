package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// SetCohortEligibilityCommand opens or closes the ordering window for every
// user in a cohort at once.
type SetCohortEligibilityCommand struct {
	cohort   string
	canOrder bool

	guard guard.ConstructorGuard
}

func NewSetCohortEligibilityCommand(cohort string, canOrder bool) (SetCohortEligibilityCommand, error) {
	command := &SetCohortEligibilityCommand{
		canOrder: canOrder,
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setCohort(cohort); err != nil {
		return SetCohortEligibilityCommand{}, err
	}

	return *command, nil
}

func (s *SetCohortEligibilityCommand) Cohort() string {
	return s.cohort
}

func (s *SetCohortEligibilityCommand) CanOrder() bool {
	return s.canOrder
}

func (s *SetCohortEligibilityCommand) Validate() error {
	return s.guard.Validate(errs.NewValueIsInvalidError("SetCohortEligibilityCommand"))
}

func (s *SetCohortEligibilityCommand) setCohort(cohort string) error {
	if cohort == "" {
		return errs.NewValueIsRequiredError("cohort")
	}
	s.cohort = cohort

	return nil
}
