// Package postgres provides the GORM-based unit of work and repository
// wiring. A unit of work scopes all five repositories to one transaction so a
// command handler's guard-then-write sequence commits or rolls back as a
// whole.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/eligibilityrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/ingredientrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/orderrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/progressrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/userrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance so
// concurrent handlers never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]any, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// user, ingredient, eligibility, and progress repositories. Repositories
// obtained before Begin run against the pool directly; after Begin they run
// inside the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []any
}

// Begin opens the transaction. Calling Begin twice on the same instance is
// safe and does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) IngredientRepository() ports.IngredientRepository {
	return ingredientrepo.NewGormIngredientRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EligibilityRepository() ports.EligibilityRepository {
	return eligibilityrepo.NewGormEligibilityRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProgressRepository() ports.ProgressRepository {
	return progressrepo.NewGormProgressRepository(uow.conn())
}

// TrackAggregate registers an aggregate touched within this unit of work.
// Repositories call it on writes; callers may inspect the set after commit.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// GetTrackedAggregates returns the aggregates written during this unit of
// work, in write order.
func (uow *GormUnitOfWork) GetTrackedAggregates() []any {
	return uow.trackedAggregates
}
