package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// PlaceOrderCommand asks to append a new order for a user. Selections map
// menu selection keys to whether the ingredient was picked; keys mapped to
// false and keys that match nothing on the menu are ignored.
type PlaceOrderCommand struct {
	userID       kernel.UUID
	selections   map[string]bool
	instructions string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(userID kernel.UUID, selections map[string]bool,
	instructions string) (PlaceOrderCommand, error) {
	var err error

	command := &PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setUserID(userID),
		command.setSelections(selections),
		command.setInstructions(instructions),
	)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	return *command, nil
}

func (p *PlaceOrderCommand) UserID() kernel.UUID {
	return p.userID
}

func (p *PlaceOrderCommand) Selections() map[string]bool {
	return p.selections
}

func (p *PlaceOrderCommand) Instructions() string {
	return p.instructions
}

func (p *PlaceOrderCommand) Validate() error {
	return p.guard.Validate(errs.NewValueIsInvalidError("PlaceOrderCommand"))
}

func (p *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	p.userID = userID

	return nil
}

func (p *PlaceOrderCommand) setSelections(selections map[string]bool) error {
	p.selections = selections

	return nil
}

func (p *PlaceOrderCommand) setInstructions(instructions string) error {
	p.instructions = instructions

	return nil
}
