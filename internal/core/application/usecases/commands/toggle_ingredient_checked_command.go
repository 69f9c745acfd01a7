package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// ToggleIngredientCheckedCommand records that a cook ticked or unticked one
// ingredient on an order's preparation checklist.
type ToggleIngredientCheckedCommand struct {
	orderID       int64
	ingredientKey string
	checked       bool

	guard guard.ConstructorGuard
}

func NewToggleIngredientCheckedCommand(orderID int64, ingredientKey string,
	checked bool) (ToggleIngredientCheckedCommand, error) {
	var err error

	command := &ToggleIngredientCheckedCommand{
		checked: checked,
		guard:   guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setOrderID(orderID),
		command.setIngredientKey(ingredientKey),
	)
	if err != nil {
		return ToggleIngredientCheckedCommand{}, err
	}

	return *command, nil
}

func (t *ToggleIngredientCheckedCommand) OrderID() int64 {
	return t.orderID
}

func (t *ToggleIngredientCheckedCommand) IngredientKey() string {
	return t.ingredientKey
}

func (t *ToggleIngredientCheckedCommand) Checked() bool {
	return t.checked
}

func (t *ToggleIngredientCheckedCommand) Validate() error {
	return t.guard.Validate(errs.NewValueIsInvalidError("ToggleIngredientCheckedCommand"))
}

func (t *ToggleIngredientCheckedCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	t.orderID = orderID

	return nil
}

func (t *ToggleIngredientCheckedCommand) setIngredientKey(ingredientKey string) error {
	if ingredientKey == "" {
		return errs.NewValueIsRequiredError("ingredientKey")
	}
	t.ingredientKey = ingredientKey

	return nil
}
