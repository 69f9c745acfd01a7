package cmd

import (
	"log/slog"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/broadcast"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/commands"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/queries"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/services"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/jobs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/lock"

	"gorm.io/gorm"
)

// CompositionRoot wires the shared infrastructure (database, keyed user
// locks, broadcast hub) into command and query handlers. The lock set and
// the hub are process-wide singletons; handlers are cheap and created per
// call site.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	userLocks  *lock.KeyedMutex
	hub        *broadcast.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		userLocks:  lock.NewKeyedMutex(),
		hub:        broadcast.NewHub(),
		logger:     logger,
	}
}

// Hub exposes the broadcast hub for the SSE endpoint and for shutdown.
func (c *CompositionRoot) Hub() *broadcast.Hub {
	return c.hub
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, services.NewSelectionResolver(), c.userLocks, c.hub)
}

func (c *CompositionRoot) CreateStartPreparingCommandHandler() commands.StartPreparingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPreparingCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReadyCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateToggleIngredientCheckedCommandHandler() commands.ToggleIngredientCheckedCommandHandler {
	var f commands.KitchenUoWFactory = FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleIngredientCheckedCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCollectOrderCommandHandler() commands.CollectOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.userLocks, c.hub)
}

func (c *CompositionRoot) CreateClearOrdersCommandHandler() commands.ClearOrdersCommandHandler {
	var f commands.KitchenUoWFactory = FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearOrdersCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSetEligibilityCommandHandler() commands.SetEligibilityCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetEligibilityCommandHandler(f, c.userLocks, c.hub)
}

func (c *CompositionRoot) CreateSetCohortEligibilityCommandHandler() commands.SetCohortEligibilityCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCohortEligibilityCommandHandler(f, c.userLocks, c.hub,
		c.config.IncludeAdminsInBulkToggle)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f, c.userLocks, c.hub)
}

func (c *CompositionRoot) CreateCreateIngredientCommandHandler() commands.CreateIngredientCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateIngredientCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateUpdateIngredientCommandHandler() commands.UpdateIngredientCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateIngredientCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateDeleteIngredientCommandHandler() commands.DeleteIngredientCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteIngredientCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveredOrdersQueryHandler() queries.GetDeliveredOrdersQueryHandler {
	return queries.NewGetDeliveredOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBoardQueryHandler(), c.hub,
		c.config.PendingReminderAfter, c.logger)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRosterUoWFactory func() commands.RosterUoW

func (f FuncRosterUoWFactory) Create() commands.RosterUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
