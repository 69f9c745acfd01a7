package commands

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// DeleteIngredientCommand asks to retire an ingredient from the menu. Lines
// on placed orders carry their own snapshot and survive the deletion.
type DeleteIngredientCommand struct {
	ingredientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteIngredientCommand(ingredientID kernel.UUID) (DeleteIngredientCommand, error) {
	command := &DeleteIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setIngredientID(ingredientID); err != nil {
		return DeleteIngredientCommand{}, err
	}

	return *command, nil
}

func (d *DeleteIngredientCommand) IngredientID() kernel.UUID {
	return d.ingredientID
}

func (d *DeleteIngredientCommand) Validate() error {
	return d.guard.Validate(errs.NewValueIsInvalidError("DeleteIngredientCommand"))
}

func (d *DeleteIngredientCommand) setIngredientID(ingredientID kernel.UUID) error {
	if err := ingredientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ingredientID", err)
	}
	d.ingredientID = ingredientID

	return nil
}
