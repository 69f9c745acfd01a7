package queries

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the catalog for the ordering form, sorted by
// category and name so the menu renders in a stable shape.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			selection_key,
			category,
			emoji,
			image_url,
			description
		FROM ingredients
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMenuQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Key,
			&resp.Category,
			&resp.Emoji,
			&resp.ImageURL,
			&resp.Description,
		)
		if err != nil {
			return nil, err
		}

		ingredientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = ingredientID

		menu = append(menu, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}
