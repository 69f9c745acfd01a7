package commands

import (
	"context"
	"sort"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"
)

// SetCohortEligibilityCommandHandler flips the ordering window for a whole
// cohort in one transaction. Admins in the cohort are skipped unless the
// handler was built with includeAdmins.
//
// Every affected user's keyed mutex is taken, in sorted key order, before the
// bulk write. Placement and delivery hold a single lock at a time, so the
// sorted multi-lock cannot deadlock against them.
type SetCohortEligibilityCommandHandler struct {
	uowFactory    RosterUoWFactory
	userLocks     *lock.KeyedMutex
	notifier      ports.ChangeNotifier
	includeAdmins bool
}

func NewSetCohortEligibilityCommandHandler(uowFactory RosterUoWFactory,
	userLocks *lock.KeyedMutex, notifier ports.ChangeNotifier,
	includeAdmins bool) SetCohortEligibilityCommandHandler {
	return SetCohortEligibilityCommandHandler{
		uowFactory:    uowFactory,
		userLocks:     userLocks,
		notifier:      notifier,
		includeAdmins: includeAdmins,
	}
}

func (h *SetCohortEligibilityCommandHandler) Handle(ctx context.Context,
	cmd SetCohortEligibilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userIDs, err := h.resolveCohort(ctx, cmd.Cohort())
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, id.String())
	}
	sort.Strings(keys)

	for _, key := range keys {
		h.userLocks.Lock(key)
	}
	defer func() {
		for _, key := range keys {
			h.userLocks.Unlock(key)
		}
	}()

	err = withTransientRetry(ctx, func() error {
		return h.set(ctx, userIDs, cmd.CanOrder())
	})
	if err != nil {
		return err
	}

	h.notifier.GeneralChanged()

	return nil
}

func (h *SetCohortEligibilityCommandHandler) resolveCohort(ctx context.Context,
	cohort string) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	members, err := uow.UserRepository().GetAllInCohort(ctx, cohort, h.includeAdmins)
	if err != nil {
		return nil, err
	}

	userIDs := make([]kernel.UUID, 0, len(members))
	for _, member := range members {
		userIDs = append(userIDs, member.ID())
	}

	return userIDs, nil
}

func (h *SetCohortEligibilityCommandHandler) set(ctx context.Context,
	userIDs []kernel.UUID, canOrder bool) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EligibilityRepository().SetForUsers(ctx, userIDs, canOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
