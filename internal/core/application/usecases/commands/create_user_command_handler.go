package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
)

// CreateUserCommandHandler adds a user to the roster and seeds their
// eligibility flag closed. Returns the id of the new user.
type CreateUserCommandHandler struct {
	uowFactory RosterUoWFactory
	notifier   ports.ChangeNotifier
}

func NewCreateUserCommandHandler(uowFactory RosterUoWFactory,
	notifier ports.ChangeNotifier) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var userID kernel.UUID
	err := withTransientRetry(ctx, func() error {
		var err error
		userID, err = h.create(ctx, cmd)

		return err
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.GeneralChanged()

	return userID, nil
}

func (h *CreateUserCommandHandler) create(ctx context.Context, cmd CreateUserCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.GetByUsername(ctx, cmd.Username())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return kernel.UUID{}, errs.NewConflictErrorWithCause("username",
			fmt.Errorf("username %q is already taken", cmd.Username()))
	}

	aggregate, err := user.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Name(),
		cmd.Role(), cmd.Cohort())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.EligibilityRepository().Set(ctx, aggregate.ID(), false); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
