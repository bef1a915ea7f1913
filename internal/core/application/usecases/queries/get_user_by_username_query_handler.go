package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// GetUserByUsernameQueryHandler retrieves one account from the database.
type GetUserByUsernameQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByUsernameQueryHandler creates a handler for account lookups.
func NewGetUserByUsernameQueryHandler(db *gorm.DB) GetUserByUsernameQueryHandler {
	return GetUserByUsernameQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no account
// carries the login name.
func (h GetUserByUsernameQueryHandler) Handle(
	ctx context.Context,
	query GetUserByUsernameQuery,
) (GetUserByUsernameQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserByUsernameQueryResponse{}, err
	}

	var resp GetUserByUsernameQueryResponse
	var id uuid.UUID

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_hash,
			role
		FROM users
		WHERE username = ?
	`, query.Username()).Row().Scan(&id, &resp.Username, &resp.PasswordHash, &resp.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserByUsernameQueryResponse{},
				errs.NewObjectNotFoundError("username", query.Username())
		}
		return GetUserByUsernameQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUserByUsernameQueryResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}
