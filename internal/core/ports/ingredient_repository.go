package ports

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
)

// IngredientRepository defines the persistence contract for the catalog.
// Catalog edits never touch placed orders; orders hold their own line
// snapshots.
type IngredientRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *ingredient.Ingredient) error

	// Update persists name, category, and display edits.
	Update(ctx context.Context, aggregate *ingredient.Ingredient) error

	// Delete removes a catalog entry. Historic order lines survive.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a catalog entry by id.
	Get(ctx context.Context, id kernel.UUID) (*ingredient.Ingredient, error)

	// GetAll retrieves the current catalog snapshot in insertion order.
	GetAll(ctx context.Context) ([]*ingredient.Ingredient, error)
}
