package queries

import (
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// GetOrderBoardQuery retrieves every order the kitchen still works on:
// pending, preparing, and ready, with line snapshots and checklist progress.
//
// Example:
//
//	query := NewGetOrderBoardQuery()
//	handler := NewGetOrderBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load the board: %w", err)
//	}
//
//	for _, card := range board {
//	    fmt.Printf("#%d %s (%d/%d)\n", card.ID, card.Status,
//	        len(card.CheckedKeys), len(card.Lines))
//	}
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query for the kitchen board. Parameterless;
// the board always shows the whole active ledger.
func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(errs.NewValueIsInvalidError("GetOrderBoardQuery"))
}

// OrderBoardLine is one ingredient snapshot on a board card. Key and Name
// come from the order line, not the live catalog, so catalog edits after
// placement do not change what the kitchen assembles.
type OrderBoardLine struct {
	Key  string
	Name string
}

// GetOrderBoardQueryResponse is one card on the kitchen board.
type GetOrderBoardQueryResponse struct {
	ID           int64
	Sequence     int
	Username     string
	UserName     string
	Status       string
	Instructions string
	CreatedAt    time.Time
	Lines        []OrderBoardLine
	CheckedKeys  []string
}
