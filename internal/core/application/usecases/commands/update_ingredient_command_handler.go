package commands

import (
	"context"
	"fmt"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
)

// UpdateIngredientCommandHandler applies catalog edits to an ingredient.
type UpdateIngredientCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.ChangeNotifier
}

func NewUpdateIngredientCommandHandler(uowFactory CatalogUoWFactory,
	notifier ports.ChangeNotifier) UpdateIngredientCommandHandler {
	return UpdateIngredientCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *UpdateIngredientCommandHandler) Handle(ctx context.Context, cmd UpdateIngredientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := withTransientRetry(ctx, func() error {
		return h.update(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *UpdateIngredientCommandHandler) update(ctx context.Context, cmd UpdateIngredientCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ingredientRepo := uow.IngredientRepository()
	catalog, err := ingredientRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	key := ingredient.SelectionKey(cmd.Name())
	var entry *ingredient.Ingredient
	for _, candidate := range catalog {
		if candidate.ID().IsEqual(cmd.IngredientID()) {
			entry = candidate

			continue
		}
		if candidate.Key() == key {
			return errs.NewConflictErrorWithCause("name",
				fmt.Errorf("ingredient %q already resolves selection key %q", candidate.Name(), key))
		}
	}
	if entry == nil {
		return errs.NewObjectNotFoundError("ingredientID", cmd.IngredientID())
	}

	if err = entry.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = entry.ChangeCategory(cmd.Category()); err != nil {
		return err
	}
	entry.UpdateDisplay(cmd.Emoji(), cmd.ImageURL(), cmd.Description())

	if err = ingredientRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
