// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetCartItemsQueryIsNotConstructed = errors.New(
	"GetCartItemsQuery must be created via NewGetCartItemsQuery constructor",
)

// GetCartItemsQuery retrieves the rendered contents of one user's cart: the
// catalog details of every item currently in it, in the order they were added.
type GetCartItemsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartItemsQuery creates a query for the given user's cart contents.
func NewGetCartItemsQuery(userID kernel.UUID) (GetCartItemsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartItemsQuery{}, err
	}

	return GetCartItemsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetCartItemsQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetCartItemsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetCartItemsQueryResponse is the read model for one cart entry, priced at
// the current catalog price.
type GetCartItemsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
}
