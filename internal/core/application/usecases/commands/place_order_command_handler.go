package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/services"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// The whole guard-then-write sequence runs under the user's keyed mutex and
// a single transaction, so two concurrent placements for the same user can
// never both pass the eligibility and active-order checks.
//
// Placement closes the user's eligibility window: it stays closed until a
// courier delivers the order.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, resolver, userLocks, notifier)
//	cmd, _ := NewPlaceOrderCommand(userID, map[string]bool{"ham": true}, "no onions")
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	resolver   services.SelectionResolver
	userLocks  *lock.KeyedMutex
	notifier   ports.ChangeNotifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// userLocks must be the same instance the delivery and eligibility handlers
// use, otherwise the per-user serialization guarantee does not hold.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory,
	resolver services.SelectionResolver, userLocks *lock.KeyedMutex,
	notifier ports.ChangeNotifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		userLocks:  userLocks,
		notifier:   notifier,
	}
}

// Handle processes the placement command and returns the id of the new order.
// Fails with errs.ErrActionIsForbidden when ordering is closed for the user
// and with errs.ErrConflict when the user already has an active order.
// Transient storage failures are retried with a fresh transaction.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	h.userLocks.Lock(cmd.UserID().String())
	defer h.userLocks.Unlock(cmd.UserID().String())

	var orderID int64
	err := withTransientRetry(ctx, func() error {
		var err error
		orderID, err = h.place(ctx, cmd)

		return err
	})
	if err != nil {
		return 0, err
	}

	h.notifier.OrderChanged(orderID)
	h.notifier.GeneralChanged()

	return orderID, nil
}

func (h *PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	placer, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}

	eligibilityRepo := uow.EligibilityRepository()
	canOrder, err := eligibilityRepo.Get(ctx, placer.ID())
	if err != nil {
		return 0, err
	}
	if !canOrder {
		return 0, errs.NewActionIsForbiddenErrorWithCause("place order",
			fmt.Errorf("ordering is closed for user %s", placer.ID()))
	}

	orderRepo := uow.OrderRepository()
	active, err := orderRepo.GetActiveForUser(ctx, placer.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}
	if active != nil {
		return 0, errs.NewConflictErrorWithCause("userID",
			fmt.Errorf("user %s already has active order %d", placer.ID(), active.ID()))
	}

	catalog, err := uow.IngredientRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	lines, err := h.resolver.Resolve(cmd.Selections(), catalog)
	if err != nil {
		return 0, err
	}

	delivered, err := orderRepo.CountDeliveredForUser(ctx, placer.ID())
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(placer.ID(), int(delivered)+1, lines,
		cmd.Instructions(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = eligibilityRepo.Set(ctx, placer.ID(), false); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
