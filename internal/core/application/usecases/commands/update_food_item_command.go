package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateFoodItemCommandIsNotConstructed = errors.New(
	"UpdateFoodItemCommand must be created via NewUpdateFoodItemCommand constructor",
)

// UpdateFoodItemCommand represents an administrative request to replace the
// fields of an existing catalog entry.
type UpdateFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodItemID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewUpdateFoodItemCommand creates a command to update a catalog entry.
func NewUpdateFoodItemCommand(
	foodItemID kernel.UUID,
	name, description string,
	price decimal.Decimal,
	category, image string,
) (UpdateFoodItemCommand, error) {
	cmd := UpdateFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFoodItemID(foodItemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateFoodItemCommand{}, err
	}

	cmd.description = description
	cmd.category = category
	cmd.image = image

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodItemCommandIsNotConstructed)
}

// FoodItemID returns the catalog entry to update.
func (c UpdateFoodItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

// Name returns the new dish name.
func (c UpdateFoodItemCommand) Name() string {
	return c.name
}

// Description returns the new dish description.
func (c UpdateFoodItemCommand) Description() string {
	return c.description
}

// Price returns the new dish price.
func (c UpdateFoodItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the new menu category.
func (c UpdateFoodItemCommand) Category() string {
	return c.category
}

// Image returns the new image reference.
func (c UpdateFoodItemCommand) Image() string {
	return c.image
}

func (c *UpdateFoodItemCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}

func (c *UpdateFoodItemCommand) setName(name string) error {
	if name == "" {
		return food.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateFoodItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return food.ErrPriceIsNegative
	}

	c.price = price
	return nil
}
