package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)

	// ErrUsernameIsTaken is returned when registration collides with an
	// existing account name.
	ErrUsernameIsTaken = errors.New("username is already taken")
)

// RegisterUserCommand represents a request to create an account. The password
// arrives already hashed; plaintext credentials never cross the application
// boundary.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	username     string
	passwordHash string
	role         user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, passwordHash string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setPasswordHash(passwordHash),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier the new account will carry.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// PasswordHash returns the bcrypt hash of the account password.
func (c RegisterUserCommand) PasswordHash() string {
	return c.passwordHash
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return user.ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return user.ErrPasswordHashIsRequired
	}

	c.passwordHash = passwordHash
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
