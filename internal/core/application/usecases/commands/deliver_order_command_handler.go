package commands

import (
	"context"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"
)

// DeliverOrderCommandHandler completes a delivery: the order becomes
// delivered and, in the same transaction, the owner's ordering eligibility
// reopens. The owner's keyed mutex is held for the whole sequence so delivery
// cannot interleave with a concurrent placement by the same user.
//
// A second deliver call for the same order is a no-op. In particular it does
// not reopen eligibility again, so a duplicate click cannot hand the user an
// extra ordering window after they already placed their next order.
type DeliverOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	userLocks  *lock.KeyedMutex
	notifier   ports.ChangeNotifier
}

func NewDeliverOrderCommandHandler(uowFactory DeliveryUoWFactory,
	userLocks *lock.KeyedMutex, notifier ports.ChangeNotifier) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		userLocks:  userLocks,
		notifier:   notifier,
	}
}

func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// The owner is not known until the order is read, so a short read-only
	// transaction resolves it before the keyed mutex is taken.
	ownerID, err := h.resolveOwner(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	h.userLocks.Lock(ownerID.String())
	defer h.userLocks.Unlock(ownerID.String())

	var changed bool
	err = withTransientRetry(ctx, func() error {
		var err error
		changed, err = h.deliver(ctx, cmd)

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

func (h *DeliverOrderCommandHandler) resolveOwner(ctx context.Context, orderID int64) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.UserID(), nil
}

func (h *DeliverOrderCommandHandler) deliver(ctx context.Context, cmd DeliverOrderCommand) (bool, error) {
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

	if aggregate.IsDelivered() {
		return false, nil
	}

	if err = aggregate.Deliver(time.Now().UTC()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.EligibilityRepository().Set(ctx, aggregate.UserID(), true); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
