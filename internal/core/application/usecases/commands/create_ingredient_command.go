package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// CreateIngredientCommand asks to add an ingredient to the menu catalog.
type CreateIngredientCommand struct {
	name        string
	category    string
	emoji       string
	imageURL    string
	description string

	guard guard.ConstructorGuard
}

func NewCreateIngredientCommand(name, category, emoji, imageURL,
	description string) (CreateIngredientCommand, error) {
	var err error

	command := &CreateIngredientCommand{
		emoji:       emoji,
		imageURL:    imageURL,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setName(name),
		command.setCategory(category),
	)
	if err != nil {
		return CreateIngredientCommand{}, err
	}

	return *command, nil
}

func (c *CreateIngredientCommand) Name() string {
	return c.name
}

func (c *CreateIngredientCommand) Category() string {
	return c.category
}

func (c *CreateIngredientCommand) Emoji() string {
	return c.emoji
}

func (c *CreateIngredientCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateIngredientCommand) Description() string {
	return c.description
}

func (c *CreateIngredientCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("CreateIngredientCommand"))
}

func (c *CreateIngredientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name

	return nil
}

func (c *CreateIngredientCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category

	return nil
}
