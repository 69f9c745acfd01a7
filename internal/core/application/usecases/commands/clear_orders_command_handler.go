package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// ClearOrdersCommandHandler wipes the ledger for a fresh event. Checklist
// progress goes first so no progress row can outlive its order; both deletes
// share one transaction. The next placed order gets id 1 again.
type ClearOrdersCommandHandler struct {
	uowFactory KitchenUoWFactory
	notifier   ports.ChangeNotifier
}

func NewClearOrdersCommandHandler(uowFactory KitchenUoWFactory,
	notifier ports.ChangeNotifier) ClearOrdersCommandHandler {
	return ClearOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *ClearOrdersCommandHandler) Handle(ctx context.Context, cmd ClearOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := withTransientRetry(ctx, func() error {
		return h.clear(ctx)
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *ClearOrdersCommandHandler) clear(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProgressRepository().DeleteAll(ctx); err != nil {
		return err
	}

	if err := uow.OrderRepository().DeleteAll(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
