package queries

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDeliveredOrdersQueryHandler lists the delivered history, newest first.
// Orders handed over without a recorded courier show an empty courier column.
type GetDeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveredOrdersQueryHandler(db *gorm.DB) GetDeliveredOrdersQueryHandler {
	return GetDeliveredOrdersQueryHandler{db: db}
}

func (h GetDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredOrdersQuery,
) ([]GetDeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetDeliveredOrdersQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.sequence,
			COALESCE(u.username, ''),
			COALESCE(u.name, ''),
			COALESCE(c.username, ''),
			o.delivered_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN users c ON c.id = o.collected_by
		WHERE o.status = ?
		ORDER BY o.delivered_at DESC
		LIMIT ?
	`, order.Delivered.String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveredOrdersQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Sequence,
			&resp.Username,
			&resp.UserName,
			&resp.CourierUsername,
			&resp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
