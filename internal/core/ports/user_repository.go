package ports

import (
	"context"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the roster.
type UserRepository interface {
	// Add persists a new user. Usernames are unique.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists role, cohort, and delivery-capability edits.
	Update(ctx context.Context, aggregate *user.User) error

	// Delete removes a user from the roster.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a user by id.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAll retrieves the full roster.
	GetAll(ctx context.Context) ([]*user.User, error)

	// GetAllInCohort retrieves the users carrying the given cohort tag.
	// Admin users are excluded unless includeAdmins is set; whether bulk
	// eligibility toggles touch admins is an operator configuration choice.
	GetAllInCohort(ctx context.Context, cohort string, includeAdmins bool) ([]*user.User, error)
}
