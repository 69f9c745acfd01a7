package ingredient

import (
	"errors"
	"strings"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

var (
	// ErrIngredientIsNotConstructed is returned when an Ingredient was not created
	// through NewIngredient or RestoreIngredient.
	ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient or RestoreIngredient constructor")
	// ErrIngredientNameIsRequired is returned when attempting to create an ingredient without a name.
	ErrIngredientNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrIngredientCategoryIsRequired is returned when attempting to create an ingredient without a category.
	ErrIngredientCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// SelectionKey derives the key clients use to select an ingredient from its
// display name: lowercase, spaces replaced with underscores. "Saute onions"
// becomes "saute_onions". The derivation is pure; nothing caches it.
func SelectionKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Ingredient is a catalog entry users can select when placing an order.
// Name doubles as the display key; category groups entries on the menu
// (salads, sauces, drinks); emoji, image URL, and description are display
// metadata with no bearing on workflow logic.
//
// Deleting or renaming an ingredient never alters placed orders: orders carry
// an immutable snapshot of each selected line, not a live catalog reference.
type Ingredient struct {
	id          kernel.UUID
	name        string
	category    string
	emoji       string
	imageURL    string
	description string

	guard guard.ConstructorGuard
}

// NewIngredient creates a new Ingredient with validation. Emoji, image URL,
// and description may be empty.
func NewIngredient(id kernel.UUID, name, category, emoji, imageURL, description string) (*Ingredient, error) {
	ing := &Ingredient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ing.setID(id),
		ing.setName(name),
		ing.setCategory(category),
	); err != nil {
		return nil, err
	}

	ing.emoji = emoji
	ing.imageURL = imageURL
	ing.description = description
	return ing, nil
}

// RestoreIngredient reconstructs an Ingredient from persistent storage.
func RestoreIngredient(id kernel.UUID, name, category, emoji, imageURL, description string) (*Ingredient, error) {
	return NewIngredient(id, name, category, emoji, imageURL, description)
}

// Validate ensures the Ingredient was constructed properly.
func (i *Ingredient) Validate() error {
	if i == nil || i.guard.Validate(ErrIngredientIsNotConstructed) != nil {
		return ErrIngredientIsNotConstructed
	}
	return nil
}

// ID returns the ingredient's unique identifier.
func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

// Name returns the display name.
func (i *Ingredient) Name() string {
	return i.name
}

// Key returns the selection key derived from the current name.
func (i *Ingredient) Key() string {
	return SelectionKey(i.name)
}

// Category returns the menu grouping.
func (i *Ingredient) Category() string {
	return i.category
}

// Emoji returns the display emoji. May be empty.
func (i *Ingredient) Emoji() string {
	return i.emoji
}

// ImageURL returns the display image URL. May be empty.
func (i *Ingredient) ImageURL() string {
	return i.imageURL
}

// Description returns the display description. May be empty.
func (i *Ingredient) Description() string {
	return i.description
}

// Rename changes the display name, and with it the derived selection key.
// Placed orders are unaffected; they snapshot the key at placement time.
func (i *Ingredient) Rename(name string) error {
	return i.setName(name)
}

// ChangeCategory moves the ingredient to another menu grouping.
func (i *Ingredient) ChangeCategory(category string) error {
	return i.setCategory(category)
}

// UpdateDisplay replaces the display metadata.
func (i *Ingredient) UpdateDisplay(emoji, imageURL, description string) {
	i.emoji = emoji
	i.imageURL = imageURL
	i.description = description
}

func (i *Ingredient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Ingredient) setName(name string) error {
	if name == "" {
		return ErrIngredientNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Ingredient) setCategory(category string) error {
	if category == "" {
		return ErrIngredientCategoryIsRequired
	}
	i.category = category
	return nil
}
