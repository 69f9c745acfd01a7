package services

import (
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"
)

// SelectionResolver is a domain service that turns a client's selection map
// (selection key -> wanted) into durable order lines against a catalog
// snapshot taken at placement time.
//
// Resolution rules:
//   - Only keys selected true produce lines
//   - Keys with no matching catalog entry are silently dropped, never an
//     error; clients may hold a stale menu and the placement still goes
//     through with what resolved
//   - Lines come back in catalog order, so rendering is stable
//
// The resolver never caches: callers pass the current catalog snapshot on
// every call.
type SelectionResolver struct{}

// NewSelectionResolver creates a new SelectionResolver instance.
func NewSelectionResolver() SelectionResolver {
	return SelectionResolver{}
}

// Resolve maps the wanted selection keys onto the catalog snapshot and
// returns one immutable line per match. An empty result is valid: an order
// with no resolvable selections is still an order.
func (SelectionResolver) Resolve(
	selections map[string]bool,
	catalog []*ingredient.Ingredient,
) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(selections))

	for _, ing := range catalog {
		if err := ing.Validate(); err != nil {
			return nil, err
		}

		if !selections[ing.Key()] {
			continue
		}

		line, err := order.NewLine(ing.ID(), ing.Key(), ing.Name())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
