package postgres

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/eligibilityrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/ingredientrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/orderrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/progressrepo"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the workflow persists to. Order
// matters only for the ledger: order_lines carries a cascade constraint to
// orders, so orders migrates first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&ingredientrepo.IngredientDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&progressrepo.ProgressDTO{},
		&eligibilityrepo.EligibilityDTO{},
	)
}
