package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCreateFoodItemCommandIsNotConstructed = errors.New(
	"CreateFoodItemCommand must be created via NewCreateFoodItemCommand constructor",
)

// CreateFoodItemCommand represents an administrative request to add a dish to
// the catalog.
type CreateFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodItemID  kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewCreateFoodItemCommand creates a command to add a catalog entry.
// Validates the id, that the name is present and the price is not negative.
func NewCreateFoodItemCommand(
	foodItemID kernel.UUID,
	name, description string,
	price decimal.Decimal,
	category, image string,
) (CreateFoodItemCommand, error) {
	cmd := CreateFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFoodItemID(foodItemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateFoodItemCommand{}, err
	}

	cmd.description = description
	cmd.category = category
	cmd.image = image

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodItemCommandIsNotConstructed)
}

// FoodItemID returns the identifier the new entry will carry.
func (c CreateFoodItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

// Name returns the dish name.
func (c CreateFoodItemCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c CreateFoodItemCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c CreateFoodItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the menu category.
func (c CreateFoodItemCommand) Category() string {
	return c.category
}

// Image returns the image reference.
func (c CreateFoodItemCommand) Image() string {
	return c.image
}

func (c *CreateFoodItemCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}

func (c *CreateFoodItemCommand) setName(name string) error {
	if name == "" {
		return food.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateFoodItemCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return food.ErrPriceIsNegative
	}

	c.price = price
	return nil
}
