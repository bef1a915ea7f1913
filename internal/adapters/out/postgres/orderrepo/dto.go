// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are immutable snapshots except for their status
// column; the item array is written once at checkout.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;index"`
	FoodItemIDs pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	itemIDs := aggregate.ItemIDs()
	rawIDs := make(pq.StringArray, 0, len(itemIDs))
	for _, id := range itemIDs {
		rawIDs = append(rawIDs, id.String())
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		FoodItemIDs: rawIDs,
		CreatedAt:   aggregate.CreatedAt(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.FoodItemIDs))
	for _, raw := range dto.FoodItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return order.RestoreOrder(id, userID, itemIDs, dto.CreatedAt, order.Status(dto.Status))
}
