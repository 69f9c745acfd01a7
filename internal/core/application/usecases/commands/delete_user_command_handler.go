package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"
)

// DeleteUserCommandHandler removes a user and their eligibility flag in one
// transaction. The keyed mutex keeps the removal from racing an in-flight
// placement by the same user.
type DeleteUserCommandHandler struct {
	uowFactory RosterUoWFactory
	userLocks  *lock.KeyedMutex
	notifier   ports.ChangeNotifier
}

func NewDeleteUserCommandHandler(uowFactory RosterUoWFactory,
	userLocks *lock.KeyedMutex, notifier ports.ChangeNotifier) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		userLocks:  userLocks,
		notifier:   notifier,
	}
}

func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.userLocks.Lock(cmd.UserID().String())
	defer h.userLocks.Unlock(cmd.UserID().String())

	err := withTransientRetry(ctx, func() error {
		return h.delete(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *DeleteUserCommandHandler) delete(ctx context.Context, cmd DeleteUserCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := userRepo.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.EligibilityRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
