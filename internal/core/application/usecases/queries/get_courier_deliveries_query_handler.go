package queries

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler lists the out-for-delivery orders held by
// one courier, in collection order.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCourierDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.sequence,
			COALESCE(u.username, ''),
			COALESCE(u.name, ''),
			o.instructions,
			o.collected_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.status = ? AND o.collected_by = ?
		ORDER BY o.collected_at
	`, order.OutForDelivery.String(), query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCourierDeliveriesQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Sequence,
			&resp.Username,
			&resp.UserName,
			&resp.Instructions,
			&resp.CollectedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
