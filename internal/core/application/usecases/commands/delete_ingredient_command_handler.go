package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// DeleteIngredientCommandHandler retires an ingredient from the catalog.
type DeleteIngredientCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.ChangeNotifier
}

func NewDeleteIngredientCommandHandler(uowFactory CatalogUoWFactory,
	notifier ports.ChangeNotifier) DeleteIngredientCommandHandler {
	return DeleteIngredientCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *DeleteIngredientCommandHandler) Handle(ctx context.Context, cmd DeleteIngredientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := withTransientRetry(ctx, func() error {
		return h.delete(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *DeleteIngredientCommandHandler) delete(ctx context.Context, cmd DeleteIngredientCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ingredientRepo := uow.IngredientRepository()
	if _, err := ingredientRepo.Get(ctx, cmd.IngredientID()); err != nil {
		return err
	}

	if err := ingredientRepo.Delete(ctx, cmd.IngredientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
