package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account. Usernames are unique; storage rejects
	// duplicates.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id.
	// Returns ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by login name.
	// Returns ObjectNotFoundError when no account carries the name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
