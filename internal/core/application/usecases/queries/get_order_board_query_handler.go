package queries

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderBoardQueryHandler reads the kitchen board straight off the
// database. Orders of users removed from the roster keep their cards; the
// user columns come back empty for them.
type GetOrderBoardQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderBoardQueryHandler(db *gorm.DB) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{db: db}
}

// Handle returns the board cards sorted by ledger id, oldest order first.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) ([]GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cards := make([]GetOrderBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.sequence,
			COALESCE(u.username, ''),
			COALESCE(u.name, ''),
			o.status,
			o.instructions,
			o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.status IN (?, ?, ?)
		ORDER BY o.id
	`, order.Pending.String(), order.Preparing.String(), order.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	ids := make([]int64, 0)

	for rows.Next() {
		var card GetOrderBoardQueryResponse

		err = rows.Scan(
			&card.ID,
			&card.Sequence,
			&card.Username,
			&card.UserName,
			&card.Status,
			&card.Instructions,
			&card.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		card.Lines = make([]OrderBoardLine, 0)
		card.CheckedKeys = make([]string, 0)
		index[card.ID] = len(cards)
		ids = append(ids, card.ID)
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return cards, nil
	}

	if err = h.attachLines(ctx, cards, index, ids); err != nil {
		return nil, err
	}
	if err = h.attachProgress(ctx, cards, index, ids); err != nil {
		return nil, err
	}

	return cards, nil
}

func (h GetOrderBoardQueryHandler) attachLines(
	ctx context.Context,
	cards []GetOrderBoardQueryResponse,
	index map[int64]int,
	ids []int64,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, ingredient_key, ingredient_name
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var line OrderBoardLine

		if err = rows.Scan(&orderID, &line.Key, &line.Name); err != nil {
			return err
		}

		i := index[orderID]
		cards[i].Lines = append(cards[i].Lines, line)
	}

	return rows.Err()
}

func (h GetOrderBoardQueryHandler) attachProgress(
	ctx context.Context,
	cards []GetOrderBoardQueryResponse,
	index map[int64]int,
	ids []int64,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, ingredient_key
		FROM order_progress
		WHERE order_id IN ?
		ORDER BY ingredient_key
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var key string

		if err = rows.Scan(&orderID, &key); err != nil {
			return err
		}

		i := index[orderID]
		cards[i].CheckedKeys = append(cards[i].CheckedKeys, key)
	}

	return rows.Err()
}
