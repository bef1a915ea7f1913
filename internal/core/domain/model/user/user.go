// Package user contains the User identity entity. This core only ever reads
// users; account registration is the single place that creates them.
package user

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrUsernameIsRequired is returned when creating a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when creating a user without a credential hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is a registered account. Carts and orders reference users by id and
// never mutate them.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewUser creates a user after validating its invariants. The password hash
// must already be computed; this entity never sees plaintext credentials.
func NewUser(id kernel.UUID, username, passwordHash string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, username, passwordHash string, role Role) (*User, error) {
	return NewUser(id, username, passwordHash, role)
}

// Validate ensures the user was built through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the account passes the binary admin check.
func (u *User) IsAdmin() bool {
	return u.role == Admin
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

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
