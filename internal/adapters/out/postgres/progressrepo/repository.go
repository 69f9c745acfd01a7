// Package progressrepo persists the preparation checklist. The
// representation is sparse: a (order_id, ingredient_key) row means checked.
package progressrepo

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/pgerr"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressDTO represents one checked checklist entry.
type ProgressDTO struct {
	OrderID       int64  `gorm:"primaryKey;autoIncrement:false"`
	IngredientKey string `gorm:"type:varchar(255);primaryKey"`
}

func (ProgressDTO) TableName() string {
	return "order_progress"
}

// GormProgressRepository implements ProgressRepository using GORM.
type GormProgressRepository struct {
	db *gorm.DB
}

// NewGormProgressRepository creates a new GORM progress repository.
func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{db: db}
}

// Upsert inserts the row when checked and deletes it when unchecked. Both
// directions are idempotent: re-checking and re-unchecking change nothing.
func (r *GormProgressRepository) Upsert(ctx context.Context, orderID int64,
	ingredientKey string, checked bool) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	if ingredientKey == "" {
		return errs.NewValueIsRequiredError("ingredientKey")
	}

	if checked {
		dto := ProgressDTO{OrderID: orderID, IngredientKey: ingredientKey}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto).Error
		if err != nil {
			return pgerr.Classify("check ingredient", err)
		}

		return nil
	}

	err := r.db.WithContext(ctx).
		Delete(&ProgressDTO{}, "order_id = ? AND ingredient_key = ?", orderID, ingredientKey).Error
	if err != nil {
		return pgerr.Classify("uncheck ingredient", err)
	}

	return nil
}

// GetChecked returns the checked keys for an order in key order.
func (r *GormProgressRepository) GetChecked(ctx context.Context, orderID int64) ([]string, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var keys []string
	err := r.db.WithContext(ctx).Model(&ProgressDTO{}).
		Where("order_id = ?", orderID).
		Order("ingredient_key").
		Pluck("ingredient_key", &keys).Error
	if err != nil {
		return nil, pgerr.Classify("get checked ingredients", err)
	}

	return keys, nil
}

// DeleteAll wipes every checklist entry.
func (r *GormProgressRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec("TRUNCATE TABLE order_progress").Error
	if err != nil {
		return pgerr.Classify("clear progress", err)
	}

	return nil
}
