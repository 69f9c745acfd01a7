package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// UpdateIngredientCommand asks to replace an ingredient's catalog fields.
// Renaming changes the selection key for future menus; existing order lines
// keep the snapshot they were placed with.
type UpdateIngredientCommand struct {
	ingredientID kernel.UUID
	name         string
	category     string
	emoji        string
	imageURL     string
	description  string

	guard guard.ConstructorGuard
}

func NewUpdateIngredientCommand(ingredientID kernel.UUID, name, category, emoji,
	imageURL, description string) (UpdateIngredientCommand, error) {
	var err error

	command := &UpdateIngredientCommand{
		emoji:       emoji,
		imageURL:    imageURL,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setIngredientID(ingredientID),
		command.setName(name),
		command.setCategory(category),
	)
	if err != nil {
		return UpdateIngredientCommand{}, err
	}

	return *command, nil
}

func (u *UpdateIngredientCommand) IngredientID() kernel.UUID {
	return u.ingredientID
}

func (u *UpdateIngredientCommand) Name() string {
	return u.name
}

func (u *UpdateIngredientCommand) Category() string {
	return u.category
}

func (u *UpdateIngredientCommand) Emoji() string {
	return u.emoji
}

func (u *UpdateIngredientCommand) ImageURL() string {
	return u.imageURL
}

func (u *UpdateIngredientCommand) Description() string {
	return u.description
}

func (u *UpdateIngredientCommand) Validate() error {
	return u.guard.Validate(errs.NewValueIsInvalidError("UpdateIngredientCommand"))
}

func (u *UpdateIngredientCommand) setIngredientID(ingredientID kernel.UUID) error {
	if err := ingredientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ingredientID", err)
	}
	u.ingredientID = ingredientID

	return nil
}

func (u *UpdateIngredientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name

	return nil
}

func (u *UpdateIngredientCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	u.category = category

	return nil
}
