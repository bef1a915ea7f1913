// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. The one-cart-per-user relation is enforced here with a
// unique index on the owning user column, so a second cart for the same user
// is rejected by the database no matter which code path tries to create it.
package cartrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The item membership is stored as an ordered uuid text array; position in
// the array is insertion order, which checkout preserves into the order
// snapshot.
type CartDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	FoodItemIDs pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

func fromDomain(aggregate *cart.Cart) CartDTO {
	itemIDs := aggregate.ItemIDs()
	rawIDs := make(pq.StringArray, 0, len(itemIDs))
	for _, id := range itemIDs {
		rawIDs = append(rawIDs, id.String())
	}

	return CartDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		FoodItemIDs: rawIDs,
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
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

	return cart.RestoreCart(id, userID, itemIDs)
}
