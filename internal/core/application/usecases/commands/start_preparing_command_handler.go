package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// StartPreparingCommandHandler moves a pending order into preparation when a
// cook opens it on the kitchen board. Opening an order that is already past
// pending is a no-op, not an error: several cooks may open the same card.
type StartPreparingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

func NewStartPreparingCommandHandler(uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier) StartPreparingCommandHandler {
	return StartPreparingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *StartPreparingCommandHandler) Handle(ctx context.Context, cmd StartPreparingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var changed bool
	err := withTransientRetry(ctx, func() error {
		var err error
		changed, err = h.startPreparing(ctx, cmd)

		return err
	})
	if err != nil {
		return err
	}

	if changed {
		h.notifier.OrderChanged(cmd.OrderID())
	}

	return nil
}

func (h *StartPreparingCommandHandler) startPreparing(ctx context.Context,
	cmd StartPreparingCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if aggregate.Status() != order.Pending {
		return false, nil
	}

	if err = aggregate.StartPreparing(); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
