package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// UpdateUserCommandHandler applies roster edits to an existing user.
type UpdateUserCommandHandler struct {
	uowFactory RosterUoWFactory
	notifier   ports.ChangeNotifier
}

func NewUpdateUserCommandHandler(uowFactory RosterUoWFactory,
	notifier ports.ChangeNotifier) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := withTransientRetry(ctx, func() error {
		return h.update(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *UpdateUserCommandHandler) update(ctx context.Context, cmd UpdateUserCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeRole(cmd.Role()); err != nil {
		return err
	}
	aggregate.ChangeCohort(cmd.Cohort())
	aggregate.SetDeliveryCapability(cmd.IsDelivery())

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
