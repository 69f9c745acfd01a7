package queries

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler lists orders in ready status for the delivery
// crew, oldest first so the shelf clears in placement order.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]GetReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetReadyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.sequence,
			COALESCE(u.username, ''),
			COALESCE(u.name, ''),
			o.instructions,
			o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.status = ?
		ORDER BY o.id
	`, order.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetReadyOrdersQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Sequence,
			&resp.Username,
			&resp.UserName,
			&resp.Instructions,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
