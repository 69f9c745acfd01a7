package commands

import (
	"errors"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/guard"
)

// CreateUserCommand asks to add a user to the roster. New users start with
// the ordering window closed until an admin opens it.
type CreateUserCommand struct {
	username string
	name     string
	role     user.Role
	cohort   string

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(username, name string, role user.Role, cohort string) (CreateUserCommand, error) {
	var err error

	command := &CreateUserCommand{
		cohort: cohort,
		guard:  guard.NewConstructorGuard(),
	}

	err = errors.Join(
		command.setUsername(username),
		command.setName(name),
		command.setRole(role),
	)
	if err != nil {
		return CreateUserCommand{}, err
	}

	return *command, nil
}

func (c *CreateUserCommand) Username() string {
	return c.username
}

func (c *CreateUserCommand) Name() string {
	return c.name
}

func (c *CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) Cohort() string {
	return c.cohort
}

func (c *CreateUserCommand) Validate() error {
	return c.guard.Validate(errs.NewValueIsInvalidError("CreateUserCommand"))
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username

	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name

	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("role", err)
	}
	c.role = role

	return nil
}
