package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary across the workflow's
// aggregates. Client code must explicitly manage the transaction lifecycle;
// repository accessors return instances bound to the current transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// IngredientRepository returns an IngredientRepository bound to the current transaction.
	IngredientRepository() IngredientRepository

	// EligibilityRepository returns an EligibilityRepository bound to the current transaction.
	EligibilityRepository() EligibilityRepository

	// ProgressRepository returns a ProgressRepository bound to the current transaction.
	ProgressRepository() ProgressRepository
}
