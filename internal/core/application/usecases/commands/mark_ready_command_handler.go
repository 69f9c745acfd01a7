package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// MarkReadyCommandHandler marks an order ready for collection. The kitchen may
// skip straight from pending and may repeat the call; only orders already on
// the delivery leg are refused.
type MarkReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.ChangeNotifier
}

func NewMarkReadyCommandHandler(uowFactory OrderUoWFactory,
	notifier ports.ChangeNotifier) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var changed bool
	err := withTransientRetry(ctx, func() error {
		var err error
		changed, err = h.markReady(ctx, cmd)

		return err
	})
	if err != nil {
		return err
	}

	if changed {
		h.notifier.OrderChanged(cmd.OrderID())
		h.notifier.GeneralChanged()
	}

	return nil
}

func (h *MarkReadyCommandHandler) markReady(ctx context.Context, cmd MarkReadyCommand) (bool, error) {
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

	if aggregate.Status() == order.Ready {
		return false, nil
	}

	if err = aggregate.MarkReady(); err != nil {
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
