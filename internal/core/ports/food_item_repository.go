package ports

import (
	"context"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
)

// FoodItemRepository defines the persistence contract for the food catalog.
// The checkout core only reads it; the administrative maintenance flow writes.
type FoodItemRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, item *food.FoodItem) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, item *food.FoodItem) error

	// Get retrieves a food item by id.
	// Returns ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*food.FoodItem, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*food.FoodItem, error)

	// Delete removes a catalog entry. The boolean reports whether a row
	// was actually removed.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
