package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetUserByUsernameQueryIsNotConstructed = errors.New(
	"GetUserByUsernameQuery must be created via NewGetUserByUsernameQuery constructor",
)

// GetUserByUsernameQuery retrieves one account by login name. Login uses it
// to fetch the stored credential hash.
type GetUserByUsernameQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetUserByUsernameQuery creates a query for one account.
func NewGetUserByUsernameQuery(username string) (GetUserByUsernameQuery, error) {
	if username == "" {
		return GetUserByUsernameQuery{}, errors.New("username is required")
	}

	return GetUserByUsernameQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByUsernameQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByUsernameQueryIsNotConstructed)
}

// Username returns the login name to look up.
func (q GetUserByUsernameQuery) Username() string {
	return q.username
}

// GetUserByUsernameQueryResponse is the account read model. PasswordHash is
// only ever compared against, never returned over the API.
type GetUserByUsernameQueryResponse struct {
	ID           kernel.UUID
	Username     string
	PasswordHash string
	Role         string
}
