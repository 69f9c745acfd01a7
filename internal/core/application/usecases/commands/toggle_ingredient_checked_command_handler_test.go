package commands_test

import (
	"testing"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/commands"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), 1, nil, "", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignID(id))

	return aggregate
}

func TestToggleIngredientCheckedCommandHandler_Handle_PendingOrderStartsPreparing(t *testing.T) {
	ctx := t.Context()

	pendingOrder := newPendingOrder(t, 5)
	cmd, err := commands.NewToggleIngredientCheckedCommand(5, "smoked_ham", true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).Return(pendingOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ProgressRepository").Return(progressRepo).Once(),
		progressRepo.On("Upsert", ctx, int64(5), "smoked_ham", true).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier.On("OrderChanged", int64(5)).Once()

	handler := commands.NewToggleIngredientCheckedCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, pendingOrder.Status())

	orderRepo.AssertExpectations(t)
	progressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestToggleIngredientCheckedCommandHandler_Handle_PreparingOrderKeepsStatus(t *testing.T) {
	ctx := t.Context()

	preparingOrder := newPendingOrder(t, 5)
	require.NoError(t, preparingOrder.StartPreparing())

	cmd, err := commands.NewToggleIngredientCheckedCommand(5, "smoked_ham", false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	progressRepo := new(MockProgressRepository)
	uow := new(MockUoW)
	notifier := new(MockChangeNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(5)).Return(preparingOrder, nil).Once(),
		uow.On("ProgressRepository").Return(progressRepo).Once(),
		progressRepo.On("Upsert", ctx, int64(5), "smoked_ham", false).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier.On("OrderChanged", int64(5)).Once()

	handler := commands.NewToggleIngredientCheckedCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, preparingOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestToggleIngredientCheckedCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewToggleIngredientCheckedCommand(404, "smoked_ham", true)
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

	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewToggleIngredientCheckedCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "OrderChanged", int64(404))
}

func TestToggleIngredientCheckedCommand_RequiresKey(t *testing.T) {
	_, err := commands.NewToggleIngredientCheckedCommand(5, "", true)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
