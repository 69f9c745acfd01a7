package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/orderrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/progressrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/userrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/queries"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ any) {}

type GetOrderBoardQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetOrderBoardQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	userRepo     *userrepo.GormUserRepository
	progressRepo *progressrepo.GormProgressRepository
	testUser     *user.User
}

func (suite *GetOrderBoardQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{},
		&orderrepo.LineDTO{}, &progressrepo.ProgressDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderBoardQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db, &mockAggregateTracker{})
	suite.progressRepo = progressrepo.NewGormProgressRepository(db)

	suite.testUser, err = user.NewUser(kernel.NewUUID(), "amara.okafor", "Amara Okafor",
		user.RoleUser, "lunch-club")
	suite.Require().NoError(err)
	err = suite.userRepo.Add(ctx, suite.testUser)
	suite.Require().NoError(err)
}

func (suite *GetOrderBoardQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderBoardQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)

	err = suite.db.Exec("TRUNCATE TABLE order_progress").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderBoardQueryHandlerTestSuite) addOrder(userID kernel.UUID,
	sequence int, lines []order.Line) *order.Order {
	aggregate, err := order.NewOrder(userID, sequence, lines, "extra napkins", time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetOrderBoardQueryHandlerTestSuite) newLines() []order.Line {
	ham, err := order.NewLine(kernel.NewUUID(), "smoked_ham", "Smoked Ham")
	suite.Require().NoError(err)

	rye, err := order.NewLine(kernel.NewUUID(), "rye_bread", "Rye Bread")
	suite.Require().NoError(err)

	return []order.Line{ham, rye}
}

func (suite *GetOrderBoardQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrderBoardQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderBoardQueryHandlerTestSuite) TestHandle_ReturnsCardsWithLinesAndProgress() {
	ctx := context.Background()

	aggregate := suite.addOrder(suite.testUser.ID(), 1, suite.newLines())

	err := suite.progressRepo.Upsert(ctx, aggregate.ID(), "smoked_ham", true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, queries.NewGetOrderBoardQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	card := result[0]
	suite.Equal(aggregate.ID(), card.ID)
	suite.Equal(1, card.Sequence)
	suite.Equal("amara.okafor", card.Username)
	suite.Equal("Amara Okafor", card.UserName)
	suite.Equal("pending", card.Status)
	suite.Equal("extra napkins", card.Instructions)

	suite.Require().Len(card.Lines, 2)
	suite.Equal("smoked_ham", card.Lines[0].Key)
	suite.Equal("Smoked Ham", card.Lines[0].Name)
	suite.Equal("rye_bread", card.Lines[1].Key)

	suite.Equal([]string{"smoked_ham"}, card.CheckedKeys)
}

func (suite *GetOrderBoardQueryHandlerTestSuite) TestHandle_ExcludesFinishedOrders() {
	ctx := context.Background()

	active := suite.addOrder(suite.testUser.ID(), 1, suite.newLines())

	collected := suite.addOrder(suite.testUser.ID(), 2, suite.newLines())
	suite.Require().NoError(collected.MarkReady())

	courierID := kernel.NewUUID()
	suite.Require().NoError(collected.Collect(courierID, time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, collected))

	result, err := suite.handler.Handle(ctx, queries.NewGetOrderBoardQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID(), result[0].ID)
}

func (suite *GetOrderBoardQueryHandlerTestSuite) TestHandle_OrdersCardsByLedgerID() {
	ctx := context.Background()

	first := suite.addOrder(suite.testUser.ID(), 1, suite.newLines())
	second := suite.addOrder(suite.testUser.ID(), 2, suite.newLines())

	result, err := suite.handler.Handle(ctx, queries.NewGetOrderBoardQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
}

func (suite *GetOrderBoardQueryHandlerTestSuite) TestHandle_KeepsCardsOfDeletedUsers() {
	ctx := context.Background()

	ghost, err := user.NewUser(kernel.NewUUID(), "kai.tran", "Kai Tran", user.RoleUser, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(ctx, ghost))

	aggregate := suite.addOrder(ghost.ID(), 1, suite.newLines())

	suite.Require().NoError(suite.userRepo.Delete(ctx, ghost.ID()))

	result, err := suite.handler.Handle(ctx, queries.NewGetOrderBoardQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(aggregate.ID(), result[0].ID)
	suite.Empty(result[0].Username)
	suite.Empty(result[0].UserName)
}

func TestGetOrderBoardQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderBoardQueryHandlerTestSuite))
}
