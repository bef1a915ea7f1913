package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetAllFoodItemsQueryIsNotConstructed = errors.New(
	"GetAllFoodItemsQuery must be created via NewGetAllFoodItemsQuery constructor",
)

// GetAllFoodItemsQuery retrieves the whole menu.
type GetAllFoodItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllFoodItemsQuery creates a query for the full catalog.
// This is a parameterless query.
func NewGetAllFoodItemsQuery() GetAllFoodItemsQuery {
	return GetAllFoodItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllFoodItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllFoodItemsQueryIsNotConstructed)
}

// GetAllFoodItemsQueryResponse is the read model for one menu entry.
type GetAllFoodItemsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
}
