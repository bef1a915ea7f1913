// Package ports defines repository and unit-of-work interfaces that connect
// the domain layer to infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
//
// The storage layer enforces the one-cart-per-user relation with a unique
// constraint on the owning user reference, so GetByUserID is a total lookup
// for the user's single cart.
type CartRepository interface {
	// Add persists a freshly created cart.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists membership changes of an existing cart.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByUserID retrieves the user's cart.
	// Returns ObjectNotFoundError when the user has no cart yet.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
}
