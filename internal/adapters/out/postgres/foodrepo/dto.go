// Package foodrepo provides data transfer objects and mapping functions for
// catalog persistence.
package foodrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
)

// FoodItemDTO represents the database structure for persisting catalog
// entries. Price is stored as a fixed-point numeric, never a float.
type FoodItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category    string
	Image       string
}

// TableName specifies the database table name for catalog entities.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

func fromDomain(item *food.FoodItem) FoodItemDTO {
	return FoodItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		Image:       item.Image(),
	}
}

func toDomain(dto FoodItemDTO) (*food.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return food.RestoreFoodItem(id, dto.Name, dto.Description, dto.Price, dto.Category, dto.Image)
}
