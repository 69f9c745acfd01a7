package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
)

// CollectOrderCommandHandler hands a ready order to a courier. Only users
// flagged with delivery capability may collect; the order records who took it
// and when.
type CollectOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.ChangeNotifier
}

func NewCollectOrderCommandHandler(uowFactory DeliveryUoWFactory,
	notifier ports.ChangeNotifier) CollectOrderCommandHandler {
	return CollectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *CollectOrderCommandHandler) Handle(ctx context.Context, cmd CollectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := withTransientRetry(ctx, func() error {
		return h.collect(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.OrderChanged(cmd.OrderID())
	h.notifier.GeneralChanged()

	return nil
}

func (h *CollectOrderCommandHandler) collect(ctx context.Context, cmd CollectOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courier, err := uow.UserRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !courier.IsDelivery() {
		return errs.NewActionIsForbiddenErrorWithCause("collect order",
			fmt.Errorf("user %s has no delivery capability", courier.ID()))
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Collect(courier.ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
