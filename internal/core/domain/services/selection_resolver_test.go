package services_test

import (
	"testing"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/ingredient"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) []*ingredient.Ingredient {
	t.Helper()

	catalog := make([]*ingredient.Ingredient, 0, 3)
	for _, entry := range []struct{ name, category string }{
		{"Tomatoes", "salads"},
		{"Saute onions", "salads"},
		{"Cheese", "salads"},
	} {
		ing, err := ingredient.NewIngredient(kernel.NewUUID(), entry.name, entry.category, "", "", "")
		require.NoError(t, err)
		catalog = append(catalog, ing)
	}
	return catalog
}

func TestSelectionResolver_Resolve(t *testing.T) {
	resolver := services.NewSelectionResolver()

	t.Run("resolves selected keys in catalog order", func(t *testing.T) {
		catalog := testCatalog(t)

		lines, err := resolver.Resolve(map[string]bool{
			"cheese":   true,
			"tomatoes": true,
		}, catalog)

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "tomatoes", lines[0].Key())
		assert.Equal(t, "Tomatoes", lines[0].Name())
		assert.True(t, lines[0].IngredientID().IsEqual(catalog[0].ID()))
		assert.Equal(t, "cheese", lines[1].Key())
	})

	t.Run("silently drops unmatched keys", func(t *testing.T) {
		lines, err := resolver.Resolve(map[string]bool{
			"cheese":     true,
			"truffle":    true,
			"gold_flake": true,
		}, testCatalog(t))

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "cheese", lines[0].Key())
	})

	t.Run("ignores keys selected false", func(t *testing.T) {
		lines, err := resolver.Resolve(map[string]bool{
			"cheese":   false,
			"tomatoes": true,
		}, testCatalog(t))

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "tomatoes", lines[0].Key())
	})

	t.Run("empty selection resolves to no lines", func(t *testing.T) {
		lines, err := resolver.Resolve(nil, testCatalog(t))

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("derived keys resolve back to the right ingredient", func(t *testing.T) {
		catalog := testCatalog(t)
		key := ingredient.SelectionKey("Saute onions")

		lines, err := resolver.Resolve(map[string]bool{key: true}, catalog)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].IngredientID().IsEqual(catalog[1].ID()))
	})

	t.Run("rejects unconstructed catalog entries", func(t *testing.T) {
		_, err := resolver.Resolve(map[string]bool{"cheese": true}, []*ingredient.Ingredient{{}})

		require.Error(t, err)
	})
}
