package commands_test

import (
	"testing"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/commands"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartPreparingCommandHandler_Handle_PendingOrderMovesToPreparing(t *testing.T) {
	ctx := t.Context()

	pendingOrder := newPendingOrder(t, 4)
	cmd, err := commands.NewStartPreparingCommand(4)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(4)).Return(pendingOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier.On("OrderChanged", int64(4)).Once()

	handler := commands.NewStartPreparingCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, pendingOrder.Status())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestStartPreparingCommandHandler_Handle_SecondCookOpeningIsNoOp(t *testing.T) {
	ctx := t.Context()

	readyOrder := newReadyOrder(t, 4, kernel.NewUUID())
	cmd, err := commands.NewStartPreparingCommand(4)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(4)).Return(readyOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartPreparingCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Ready, readyOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	notifier.AssertNotCalled(t, "OrderChanged", int64(4))
}

func TestStartPreparingCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewStartPreparingCommand(404)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartPreparingCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "OrderChanged", int64(404))
}

func TestStartPreparingCommand_RequiresOrderID(t *testing.T) {
	_, err := commands.NewStartPreparingCommand(0)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
