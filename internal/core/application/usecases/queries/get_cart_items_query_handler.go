package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
)

// GetCartItemsQueryHandler renders a user's cart as catalog entries.
// Reading a cart never fails for lack of one: a user who has not added
// anything simply gets an empty list.
type GetCartItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetCartItemsQueryHandler creates a handler for cart content queries.
func NewGetCartItemsQueryHandler(db *gorm.DB) GetCartItemsQueryHandler {
	return GetCartItemsQueryHandler{db: db}
}

// Handle executes the query. Reads the cart's item id list, then resolves
// the ids against the catalog. Results keep the cart's insertion order; ids
// whose catalog entry was deleted in the meantime are skipped.
func (h GetCartItemsQueryHandler) Handle(
	ctx context.Context,
	query GetCartItemsQuery,
) ([]GetCartItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetCartItemsQueryResponse, 0)

	var itemIDs pq.StringArray
	err := h.db.WithContext(ctx).Raw(`
		SELECT food_item_ids
		FROM carts
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row().Scan(&itemIDs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return items, nil
		}
		return nil, err
	}

	if len(itemIDs) == 0 {
		return items, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			image
		FROM food_items
		WHERE id = ANY(?)
	`, itemIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]GetCartItemsQueryResponse, len(itemIDs))

	for rows.Next() {
		var item GetCartItemsQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&price,
			&item.Category,
			&item.Image,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.Price = price
		byID[id.String()] = item
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range itemIDs {
		if item, ok := byID[id]; ok {
			items = append(items, item)
		}
	}

	return items, nil
}
