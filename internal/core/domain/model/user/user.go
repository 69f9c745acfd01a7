package user

import (
	"errors"
	"fmt"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// Role determines what a user may administer. Regular users place orders;
// admins additionally manage the roster, the catalog, and eligibility.
type Role string

const (
	// RoleAdmin grants roster, catalog, and eligibility administration.
	RoleAdmin Role = "admin"
	// RoleUser is a regular ordering user.
	RoleUser Role = "user"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleUser {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
	// ErrUsernameIsRequired is returned when attempting to create a user without a login name.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrNameIsRequired is returned when attempting to create a user without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// User represents a member of the household roster. It is the aggregate that
// carries the attributes the order workflow cares about: role, cohort tag
// (used for bulk eligibility toggles), and the delivery capability flag that
// gates order collection.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Username and display name are non-empty
//   - Role is one of the declared Role values
//   - Can only be created through NewUser or RestoreUser
//
// Orders reference users by id, never by display name. Renaming a user leaves
// their order history intact.
type User struct {
	id         kernel.UUID
	username   string
	name       string
	role       Role
	cohort     string
	isDelivery bool

	guard guard.ConstructorGuard
}

// NewUser creates a new User with validation. The cohort tag is optional and
// may be empty; delivery capability defaults to off.
func NewUser(id kernel.UUID, username, name string, role Role, cohort string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.cohort = cohort
	return u, nil
}

// RestoreUser reconstructs a User from persistent storage, including the
// mutable attributes a fresh user does not have yet.
func RestoreUser(id kernel.UUID, username, name string, role Role, cohort string, isDelivery bool) (*User, error) {
	u, err := NewUser(id, username, name, role, cohort)
	if err != nil {
		return nil, err
	}

	u.isDelivery = isDelivery
	return u, nil
}

// Validate ensures the User was constructed properly.
func (u *User) Validate() error {
	if u == nil || u.guard.Validate(ErrUserIsNotConstructed) != nil {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identity.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// Cohort returns the grouping tag used for bulk eligibility toggles.
// May be empty.
func (u *User) Cohort() string {
	return u.cohort
}

// IsDelivery reports whether the user may collect and deliver orders.
func (u *User) IsDelivery() bool {
	return u.isDelivery
}

// ChangeRole updates the user's role. Admin-only edit.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

// ChangeCohort updates the grouping tag. Admin-only edit.
func (u *User) ChangeCohort(cohort string) {
	u.cohort = cohort
}

// SetDeliveryCapability toggles whether the user may collect orders.
// Admin-only edit.
func (u *User) SetDeliveryCapability(isDelivery bool) {
	u.isDelivery = isDelivery
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
