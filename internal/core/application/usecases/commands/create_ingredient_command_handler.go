package commands

import (
	"context"
	"fmt"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
)

// CreateIngredientCommandHandler adds an ingredient to the catalog. Selection
// keys derive from names, so two ingredients may not share one. Orders
// already placed keep their line snapshots and are unaffected.
type CreateIngredientCommandHandler struct {
	uowFactory CatalogUoWFactory
	notifier   ports.ChangeNotifier
}

func NewCreateIngredientCommandHandler(uowFactory CatalogUoWFactory,
	notifier ports.ChangeNotifier) CreateIngredientCommandHandler {
	return CreateIngredientCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *CreateIngredientCommandHandler) Handle(ctx context.Context,
	cmd CreateIngredientCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var ingredientID kernel.UUID
	err := withTransientRetry(ctx, func() error {
		var err error
		ingredientID, err = h.create(ctx, cmd)

		return err
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.GeneralChanged()

	return ingredientID, nil
}

func (h *CreateIngredientCommandHandler) create(ctx context.Context,
	cmd CreateIngredientCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ingredientRepo := uow.IngredientRepository()
	catalog, err := ingredientRepo.GetAll(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	key := ingredient.SelectionKey(cmd.Name())
	for _, entry := range catalog {
		if entry.Key() == key {
			return kernel.UUID{}, errs.NewConflictErrorWithCause("name",
				fmt.Errorf("ingredient %q already resolves selection key %q", entry.Name(), key))
		}
	}

	entry, err := ingredient.NewIngredient(kernel.NewUUID(), cmd.Name(),
		cmd.Category(), cmd.Emoji(), cmd.ImageURL(), cmd.Description())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = ingredientRepo.Add(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return entry.ID(), nil
}
