// Package ingredientrepo persists the menu catalog. The selection key is
// stored denormalized next to the name so the database can enforce key
// uniqueness.
package ingredientrepo

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IngredientDTO represents the database structure for persisting ingredients.
type IngredientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255)"`
	SelectionKey string    `gorm:"type:varchar(255);uniqueIndex"`
	Category     string    `gorm:"type:varchar(255);index"`
	Emoji        string
	ImageURL     string
	Description  string
}

func (IngredientDTO) TableName() string {
	return "ingredients"
}

func fromDomain(entity *ingredient.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:           entity.ID().Bytes(),
		Name:         entity.Name(),
		SelectionKey: entity.Key(),
		Category:     entity.Category(),
		Emoji:        entity.Emoji(),
		ImageURL:     entity.ImageURL(),
		Description:  entity.Description(),
	}
}

func toDomain(dto IngredientDTO) (*ingredient.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return ingredient.RestoreIngredient(id, dto.Name, dto.Category, dto.Emoji,
		dto.ImageURL, dto.Description)
}
