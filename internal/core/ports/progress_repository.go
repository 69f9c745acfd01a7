package ports

import (
	"context"
)

// ProgressRepository defines the persistence contract for the preparation
// checklist. The representation is sparse: a row for (orderID, ingredientKey)
// means checked, no row means unchecked.
type ProgressRepository interface {
	// Upsert records a checklist toggle: inserts the row when checked,
	// deletes it when unchecked. Both directions are idempotent.
	Upsert(ctx context.Context, orderID int64, ingredientKey string, checked bool) error

	// GetChecked returns the checked ingredient keys for an order, in
	// stable (key) order for display.
	GetChecked(ctx context.Context, orderID int64) ([]string, error)

	// DeleteAll removes every checklist entry. Admin bulk clear only.
	DeleteAll(ctx context.Context) error
}
