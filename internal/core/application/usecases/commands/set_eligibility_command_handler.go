package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"
)

// SetEligibilityCommandHandler flips one user's ordering window by admin
// decision. The user's keyed mutex is held so the flip cannot interleave with
// an in-flight placement or delivery for the same user.
type SetEligibilityCommandHandler struct {
	uowFactory RosterUoWFactory
	userLocks  *lock.KeyedMutex
	notifier   ports.ChangeNotifier
}

func NewSetEligibilityCommandHandler(uowFactory RosterUoWFactory,
	userLocks *lock.KeyedMutex, notifier ports.ChangeNotifier) SetEligibilityCommandHandler {
	return SetEligibilityCommandHandler{
		uowFactory: uowFactory,
		userLocks:  userLocks,
		notifier:   notifier,
	}
}

func (h *SetEligibilityCommandHandler) Handle(ctx context.Context, cmd SetEligibilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.userLocks.Lock(cmd.UserID().String())
	defer h.userLocks.Unlock(cmd.UserID().String())

	err := withTransientRetry(ctx, func() error {
		return h.set(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *SetEligibilityCommandHandler) set(ctx context.Context, cmd SetEligibilityCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// NotFound surfaces here instead of silently seeding a flag for a user
	// that does not exist.
	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.EligibilityRepository().Set(ctx, cmd.UserID(), cmd.CanOrder()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
