package userrepo

import (
	"context"
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/pgerr"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add user", err)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"role":        dto.Role,
			"cohort":      dto.Cohort,
			"is_delivery": dto.IsDelivery,
		})
	if result.Error != nil {
		return pgerr.Classify("update user", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Classify("delete user", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, pgerr.Classify("get user", err)
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, pgerr.Classify("get user by username", err)
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("username").Find(&dtos).Error; err != nil {
		return nil, pgerr.Classify("get all users", err)
	}

	return toDomainSlice(dtos)
}

func (r *GormUserRepository) GetAllInCohort(ctx context.Context, cohort string,
	includeAdmins bool) ([]*user.User, error) {
	if cohort == "" {
		return nil, errs.NewValueIsRequiredError("cohort")
	}

	query := r.db.WithContext(ctx).Where("cohort = ?", cohort)
	if !includeAdmins {
		query = query.Where("role != ?", string(user.RoleAdmin))
	}

	var dtos []UserDTO
	if err := query.Order("username").Find(&dtos).Error; err != nil {
		return nil, pgerr.Classify("get cohort users", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []UserDTO) ([]*user.User, error) {
	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
