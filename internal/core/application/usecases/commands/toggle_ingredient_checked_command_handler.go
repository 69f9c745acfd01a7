package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// ToggleIngredientCheckedCommandHandler persists one checklist tick. Ticking
// anything on a pending order implicitly moves it into preparing, in the same
// transaction, so the board never shows progress on an untouched order.
type ToggleIngredientCheckedCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.ChangeNotifier
}

func NewToggleIngredientCheckedCommandHandler(uowFactory KitchenUoWFactory,
	notifier ports.ChangeNotifier) ToggleIngredientCheckedCommandHandler {
	return ToggleIngredientCheckedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *ToggleIngredientCheckedCommandHandler) Handle(ctx context.Context,
	cmd ToggleIngredientCheckedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := withTransientRetry(ctx, func() error {
		return h.toggle(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.OrderChanged(cmd.OrderID())

	return nil
}

func (h *ToggleIngredientCheckedCommandHandler) toggle(ctx context.Context,
	cmd ToggleIngredientCheckedCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Pending {
		if err = aggregate.StartPreparing(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	progressRepo := uow.ProgressRepository()
	if err = progressRepo.Upsert(ctx, cmd.OrderID(), cmd.IngredientKey(), cmd.Checked()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
