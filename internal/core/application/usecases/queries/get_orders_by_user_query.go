package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves one user's order history.
type GetOrdersByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for a user's order history.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns whose history to fetch.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}
