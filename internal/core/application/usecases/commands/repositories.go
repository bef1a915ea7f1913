// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FoodItemRepoFactory provides access to the food catalog repository within a transaction.
	FoodItemRepoFactory interface {
		FoodItemRepository() ports.FoodItemRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CartUoW manages transactions for cart mutations. Cart commands also
	// read users (ownership check) and the catalog (item existence check).
	CartUoW interface {
		TxManager
		CartRepoFactory
		UserRepoFactory
		FoodItemRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction. Placing an order writes
	// the order and clears the cart atomically, so both repositories must be
	// bound to the same transaction.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FoodUoW manages transactions for catalog maintenance operations.
	FoodUoW interface {
		TxManager
		FoodItemRepoFactory
	}

	// FoodUoWFactory creates new catalog unit of work instances.
	FoodUoWFactory interface {
		Create() FoodUoW
	}

	// UserUoW manages transactions for account registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
