// Package eligibilityrepo persists the per-user ordering flag. The table is
// a plain key-value map from user id to a boolean; absence means closed.
package eligibilityrepo

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/pgerr"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EligibilityDTO represents one user's ordering flag.
type EligibilityDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CanOrder bool
}

func (EligibilityDTO) TableName() string {
	return "order_eligibility"
}

// GormEligibilityRepository implements EligibilityRepository using GORM.
type GormEligibilityRepository struct {
	db *gorm.DB
}

// NewGormEligibilityRepository creates a new GORM eligibility repository.
func NewGormEligibilityRepository(db *gorm.DB) *GormEligibilityRepository {
	return &GormEligibilityRepository{db: db}
}

// Get reports whether the user may order. A missing row reads as closed,
// never as an error: unknown users have no ordering window.
func (r *GormEligibilityRepository) Get(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var dtos []EligibilityDTO
	err := r.db.WithContext(ctx).Limit(1).
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return false, pgerr.Classify("get eligibility", err)
	}

	if len(dtos) == 0 {
		return false, nil
	}

	return dtos[0].CanOrder, nil
}

// Set upserts the user's flag.
func (r *GormEligibilityRepository) Set(ctx context.Context, userID kernel.UUID, canOrder bool) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	dto := EligibilityDTO{UserID: userID.Bytes(), CanOrder: canOrder}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_order"}),
	}).Create(&dto).Error
	if err != nil {
		return pgerr.Classify("set eligibility", err)
	}

	return nil
}

// SetForUsers upserts a batch of flags in one statement.
func (r *GormEligibilityRepository) SetForUsers(ctx context.Context, userIDs []kernel.UUID,
	canOrder bool) error {
	if len(userIDs) == 0 {
		return nil
	}

	dtos := make([]EligibilityDTO, 0, len(userIDs))
	for _, userID := range userIDs {
		if err := userID.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, EligibilityDTO{UserID: userID.Bytes(), CanOrder: canOrder})
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_order"}),
	}).Create(&dtos).Error
	if err != nil {
		return pgerr.Classify("set eligibility batch", err)
	}

	return nil
}

// Delete removes a user's flag. Deleting an absent flag is not an error.
func (r *GormEligibilityRepository) Delete(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Delete(&EligibilityDTO{}, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return pgerr.Classify("delete eligibility", err)
	}

	return nil
}
