// Package commands contains the write-side operations of the order workflow:
// placement, kitchen progress, collection, delivery, bulk clear, eligibility
// toggles, and roster/catalog administration. All commands follow a
// consistent pattern: constructor validation, per-user serialization where
// the operation touches eligibility, transaction management, persistence,
// then change notification after commit.
package commands

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition that covers the
// aggregates it touches; the shared lock order is eligibility before ledger.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order ledger within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the roster within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// IngredientRepoFactory provides access to the catalog within a transaction.
	IngredientRepoFactory interface {
		IngredientRepository() ports.IngredientRepository
	}

	// EligibilityRepoFactory provides access to the eligibility flags within a transaction.
	EligibilityRepoFactory interface {
		EligibilityRepository() ports.EligibilityRepository
	}

	// ProgressRepoFactory provides access to the preparation checklist within a transaction.
	ProgressRepoFactory interface {
		ProgressRepository() ports.ProgressRepository
	}

	// OrderUoW manages transactions for ledger-only operations
	// (start preparing, mark ready).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new ledger-only unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// KitchenUoW manages transactions spanning the ledger and the
	// preparation checklist (ingredient toggles, bulk clear).
	KitchenUoW interface {
		TxManager
		OrderRepoFactory
		ProgressRepoFactory
	}

	// KitchenUoWFactory creates new kitchen unit of work instances.
	KitchenUoWFactory interface {
		Create() KitchenUoW
	}

	// PlacementUoW manages the placement guard-then-write sequence:
	// eligibility check, active-order check, catalog snapshot, ledger
	// append, eligibility close — all in one transaction.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		IngredientRepoFactory
		EligibilityRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// DeliveryUoW manages collection and delivery: ledger mutation, courier
	// capability lookup, and the delivery-side eligibility reopen.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		EligibilityRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RosterUoW manages roster administration and eligibility toggles.
	RosterUoW interface {
		TxManager
		UserRepoFactory
		EligibilityRepoFactory
	}

	// RosterUoWFactory creates new roster unit of work instances.
	RosterUoWFactory interface {
		Create() RosterUoW
	}

	// CatalogUoW manages ingredient catalog administration.
	CatalogUoW interface {
		TxManager
		IngredientRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
