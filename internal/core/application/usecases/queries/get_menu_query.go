package queries

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// GetMenuQuery retrieves the ingredient catalog as the ordering form shows
// it, grouped by category.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(errs.NewValueIsInvalidError("GetMenuQuery"))
}

// GetMenuQueryResponse is one selectable ingredient. Key is what the
// placement form submits back in its selections map.
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Key         string
	Category    string
	Emoji       string
	ImageURL    string
	Description string
}
