package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order snapshot.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (status updates).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in storage order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByUserID retrieves the orders owned by one user.
	GetAllByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order permanently. The boolean reports whether a
	// row was actually removed, so callers can distinguish deleting a
	// missing order from success.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
