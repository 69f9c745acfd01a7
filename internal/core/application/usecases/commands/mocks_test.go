package commands_test

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/commands"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveForUser(ctx context.Context, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountDeliveredForUser(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) GetAllInCohort(ctx context.Context, cohort string,
	includeAdmins bool) ([]*user.User, error) {
	args := m.Called(ctx, cohort, includeAdmins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockIngredientRepository struct{ mock.Mock }

func (m *MockIngredientRepository) Add(ctx context.Context, i *ingredient.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIngredientRepository) Update(ctx context.Context, i *ingredient.Ingredient) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngredientRepository) Get(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ingredient.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetAll(ctx context.Context) ([]*ingredient.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ingredient.Ingredient), args.Error(1)
}

type MockEligibilityRepository struct{ mock.Mock }

func (m *MockEligibilityRepository) Get(ctx context.Context, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEligibilityRepository) Set(ctx context.Context, userID kernel.UUID, canOrder bool) error {
	args := m.Called(ctx, userID, canOrder)
	return args.Error(0)
}

func (m *MockEligibilityRepository) SetForUsers(ctx context.Context, userIDs []kernel.UUID,
	canOrder bool) error {
	args := m.Called(ctx, userIDs, canOrder)
	return args.Error(0)
}

func (m *MockEligibilityRepository) Delete(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProgressRepository struct{ mock.Mock }

func (m *MockProgressRepository) Upsert(ctx context.Context, orderID int64, ingredientKey string,
	checked bool) error {
	args := m.Called(ctx, orderID, ingredientKey, checked)
	return args.Error(0)
}

func (m *MockProgressRepository) GetChecked(ctx context.Context, orderID int64) ([]string, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProgressRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockUoW satisfies every composed unit-of-work interface the command
// handlers use, so one mock type serves all of them.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) IngredientRepository() ports.IngredientRepository {
	args := m.Called()
	return args.Get(0).(ports.IngredientRepository)
}

func (m *MockUoW) EligibilityRepository() ports.EligibilityRepository {
	args := m.Called()
	return args.Get(0).(ports.EligibilityRepository)
}

func (m *MockUoW) ProgressRepository() ports.ProgressRepository {
	args := m.Called()
	return args.Get(0).(ports.ProgressRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockKitchenUoWFactory struct{ mock.Mock }

func (m *MockKitchenUoWFactory) Create() commands.KitchenUoW {
	args := m.Called()
	return args.Get(0).(commands.KitchenUoW)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockRosterUoWFactory struct{ mock.Mock }

func (m *MockRosterUoWFactory) Create() commands.RosterUoW {
	args := m.Called()
	return args.Get(0).(commands.RosterUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockChangeNotifier struct{ mock.Mock }

func (m *MockChangeNotifier) OrderChanged(orderID int64) {
	m.Called(orderID)
}

func (m *MockChangeNotifier) GeneralChanged() {
	m.Called()
}
