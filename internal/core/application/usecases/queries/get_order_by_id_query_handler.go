package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"foodorder/internal/pkg/errs"
)

// GetOrderByIDQueryHandler retrieves one order from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no order
// carries the id.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			u.username,
			o.food_item_ids,
			o.created_at,
			o.status
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllOrdersQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetAllOrdersQueryResponse{}, err
	}

	return resp, nil
}
