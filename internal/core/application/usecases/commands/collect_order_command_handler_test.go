package commands_test

import (
	"testing"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/commands"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCourier(t *testing.T, canDeliver bool) *user.User {
	t.Helper()

	courier, err := user.RestoreUser(kernel.NewUUID(), "runner", "R. Runner",
		user.RoleUser, "blue", canDeliver)
	require.NoError(t, err)

	return courier
}

func TestCollectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courier := newCourier(t, true)
	readyOrder := newReadyOrder(t, 3, kernel.NewUUID())

	cmd, err := commands.NewCollectOrderCommand(3, courier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courier.ID()).Return(courier, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(3)).Return(readyOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier.On("OrderChanged", int64(3)).Once()
	notifier.On("GeneralChanged").Once()

	handler := commands.NewCollectOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, readyOrder.Status())
	require.NotNil(t, readyOrder.CollectedBy())
	assert.True(t, readyOrder.CollectedBy().IsEqual(courier.ID()))
	assert.NotNil(t, readyOrder.CollectedAt())

	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCollectOrderCommandHandler_Handle_NoDeliveryCapability(t *testing.T) {
	ctx := t.Context()

	courier := newCourier(t, false)
	cmd, err := commands.NewCollectOrderCommand(3, courier.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courier.ID()).Return(courier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCollectOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "GeneralChanged")
}

func TestCollectOrderCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()

	courier := newCourier(t, true)
	pendingOrder, err := order.NewOrder(kernel.NewUUID(), 1, nil, "", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, pendingOrder.AssignID(3))

	cmd, err := commands.NewCollectOrderCommand(3, courier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courier.ID()).Return(courier, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(3)).Return(pendingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCollectOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, pendingOrder.Status())
}
