package orderrepo

import (
	"context"
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/pgerr"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends the order and writes the assigned ledger id back onto the
// aggregate. Line snapshots are inserted in the same statement batch.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add order", err)
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update persists status and collection/delivery bookkeeping. Lines are
// immutable and never rewritten here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"collected_by": dto.CollectedBy,
			"collected_at": dto.CollectedAt,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return pgerr.Classify("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order with its lines by ledger id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, pgerr.Classify("get order", err)
	}

	return toDomain(dto)
}

// GetActiveForUser retrieves the user's current non-delivered order.
func (r *GormOrderRepository) GetActiveForUser(ctx context.Context, userID kernel.UUID) (*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").
		First(&dto, "user_id = ? AND status != ?", userID.Bytes(), order.Delivered.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("activeOrder", userID.String())
		}
		return nil, pgerr.Classify("get active order", err)
	}

	return toDomain(dto)
}

// CountDeliveredForUser counts the user's delivered orders.
func (r *GormOrderRepository) CountDeliveredForUser(ctx context.Context, userID kernel.UUID) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("user_id = ? AND status = ?", userID.Bytes(), order.Delivered.String()).
		Count(&count).Error
	if err != nil {
		return 0, pgerr.Classify("count delivered orders", err)
	}

	return count, nil
}

// DeleteAll wipes the ledger and resets the id sequence; cascades onto the
// line snapshots.
func (r *GormOrderRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Exec("TRUNCATE TABLE orders RESTART IDENTITY CASCADE").Error
	if err != nil {
		return pgerr.Classify("clear orders", err)
	}

	return nil
}
