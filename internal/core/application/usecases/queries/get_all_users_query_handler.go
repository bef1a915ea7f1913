package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
)

// GetAllUsersQueryHandler retrieves all accounts from the database.
type GetAllUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllUsersQueryHandler creates a handler for account overview queries.
func NewGetAllUsersQueryHandler(db *gorm.DB) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve every account, sorted by username.
func (h GetAllUsersQueryHandler) Handle(
	ctx context.Context,
	query GetAllUsersQuery,
) ([]GetAllUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetAllUsersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			role
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllUsersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Username, &resp.Role); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
