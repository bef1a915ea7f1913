package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
)

// GetAllFoodItemsQueryHandler retrieves the menu from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllFoodItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllFoodItemsQueryHandler creates a handler for menu queries.
func NewGetAllFoodItemsQueryHandler(db *gorm.DB) GetAllFoodItemsQueryHandler {
	return GetAllFoodItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve the full catalog, sorted by name.
func (h GetAllFoodItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllFoodItemsQuery,
) ([]GetAllFoodItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllFoodItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			image
		FROM food_items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetAllFoodItemsQueryResponse
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
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
