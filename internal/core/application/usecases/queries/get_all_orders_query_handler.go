package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// GetAllOrdersQueryHandler retrieves all orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order overview queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve every order, newest first, joined
// with the owning user's login name.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			u.username,
			o.food_item_ids,
			o.created_at,
			o.status
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow converts one order row with a joined username into the read
// model. Shared by every order query so they stay consistent on column order.
func scanOrderRow(scan func(dest ...any) error) (GetAllOrdersQueryResponse, error) {
	var resp GetAllOrdersQueryResponse
	var id, userID uuid.UUID
	var username string
	var itemIDs pq.StringArray
	var createdAt time.Time
	var status int

	if err := scan(&id, &userID, &username, &itemIDs, &createdAt, &status); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	items := make([]kernel.UUID, 0, len(itemIDs))
	for _, raw := range itemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return GetAllOrdersQueryResponse{}, idErr
		}
		items = append(items, itemID)
	}

	resp.ID = orderID
	resp.UserID = ownerID
	resp.Username = username
	resp.ItemIDs = items
	resp.CreatedAt = createdAt
	resp.Status = order.Status(status).String()
	return resp, nil
}
