package http

import "time"

// ErrorResponse is the JSON shape of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	UserID       string          `json:"user_id"`
	Selections   map[string]bool `json:"selections"`
	Instructions string          `json:"instructions"`
}

// PlacedOrderResponse carries the ledger id of a freshly placed order.
type PlacedOrderResponse struct {
	ID int64 `json:"id"`
}

// ChecklistToggleRequest is the body of POST /api/v1/orders/:id/checklist.
type ChecklistToggleRequest struct {
	IngredientKey string `json:"ingredient_key"`
	Checked       bool   `json:"checked"`
}

// CollectOrderRequest is the body of POST /api/v1/orders/:id/collect.
type CollectOrderRequest struct {
	CourierID string `json:"courier_id"`
}

// EligibilityRequest toggles an ordering window, for one user or a cohort.
type EligibilityRequest struct {
	CanOrder bool `json:"can_order"`
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Cohort   string `json:"cohort"`
}

// UpdateUserRequest is the body of PUT /api/v1/users/:id.
type UpdateUserRequest struct {
	Role       string `json:"role"`
	Cohort     string `json:"cohort"`
	IsDelivery bool   `json:"is_delivery"`
}

// CreatedResponse carries the id of a newly created roster or catalog entry.
type CreatedResponse struct {
	ID string `json:"id"`
}

// IngredientRequest is the body of POST /api/v1/ingredients and
// PUT /api/v1/ingredients/:id.
type IngredientRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Emoji       string `json:"emoji"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// BoardLine is one ingredient snapshot on a board card.
type BoardLine struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// BoardCard is one order on GET /api/v1/orders/board.
type BoardCard struct {
	ID           int64       `json:"id"`
	Sequence     int         `json:"sequence"`
	Username     string      `json:"username"`
	UserName     string      `json:"user_name"`
	Status       string      `json:"status"`
	Instructions string      `json:"instructions"`
	CreatedAt    time.Time   `json:"created_at"`
	Lines        []BoardLine `json:"lines"`
	CheckedKeys  []string    `json:"checked_keys"`
}

// ReadyOrder is one order on GET /api/v1/orders/ready.
type ReadyOrder struct {
	ID           int64     `json:"id"`
	Sequence     int       `json:"sequence"`
	Username     string    `json:"username"`
	UserName     string    `json:"user_name"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
}

// CourierDelivery is one order on GET /api/v1/couriers/:id/deliveries.
type CourierDelivery struct {
	ID           int64     `json:"id"`
	Sequence     int       `json:"sequence"`
	Username     string    `json:"username"`
	UserName     string    `json:"user_name"`
	Instructions string    `json:"instructions"`
	CollectedAt  time.Time `json:"collected_at"`
}

// DeliveredOrder is one entry on GET /api/v1/orders/delivered.
type DeliveredOrder struct {
	ID              int64     `json:"id"`
	Sequence        int       `json:"sequence"`
	Username        string    `json:"username"`
	UserName        string    `json:"user_name"`
	CourierUsername string    `json:"courier_username"`
	DeliveredAt     time.Time `json:"delivered_at"`
}

// MenuItem is one selectable ingredient on GET /api/v1/menu.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Category    string `json:"category"`
	Emoji       string `json:"emoji"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}
