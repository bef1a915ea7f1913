package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetAllUsersQueryIsNotConstructed = errors.New(
	"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
)

// GetAllUsersQuery retrieves every registered account for the administrative
// overview.
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a query for the full account list.
// This is a parameterless query.
func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}

// GetAllUsersQueryResponse is the read model for one account row. It carries
// no credential material.
type GetAllUsersQueryResponse struct {
	ID       kernel.UUID
	Username string
	Role     string
}
