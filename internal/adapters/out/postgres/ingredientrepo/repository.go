package ingredientrepo

import (
	"context"
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/pgerr"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIngredientRepository implements IngredientRepository using GORM.
type GormIngredientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormIngredientRepository creates a new GORM ingredient repository.
func NewGormIngredientRepository(db *gorm.DB, tracker aggregateTracker) *GormIngredientRepository {
	return &GormIngredientRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormIngredientRepository) Add(ctx context.Context, entity *ingredient.Ingredient) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add ingredient", err)
	}

	r.tracker.TrackAggregate(entity)
	return nil
}

func (r *GormIngredientRepository) Update(ctx context.Context, entity *ingredient.Ingredient) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&IngredientDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"selection_key": dto.SelectionKey,
			"category":      dto.Category,
			"emoji":         dto.Emoji,
			"image_url":     dto.ImageURL,
			"description":   dto.Description,
		})
	if result.Error != nil {
		return pgerr.Classify("update ingredient", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ingredient", entity.ID().String())
	}

	r.tracker.TrackAggregate(entity)
	return nil
}

func (r *GormIngredientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&IngredientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Classify("delete ingredient", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ingredient", id.String())
	}

	return nil
}

func (r *GormIngredientRepository) Get(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ingredient", id.String())
		}
		return nil, pgerr.Classify("get ingredient", err)
	}

	return toDomain(dto)
}

func (r *GormIngredientRepository) GetAll(ctx context.Context) ([]*ingredient.Ingredient, error) {
	var dtos []IngredientDTO
	err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("get all ingredients", err)
	}

	catalog := make([]*ingredient.Ingredient, 0, len(dtos))
	for _, dto := range dtos {
		entity, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		catalog = append(catalog, entity)
	}

	return catalog, nil
}
