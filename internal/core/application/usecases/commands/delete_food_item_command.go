package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrDeleteFoodItemCommandIsNotConstructed = errors.New(
	"DeleteFoodItemCommand must be created via NewDeleteFoodItemCommand constructor",
)

// DeleteFoodItemCommand represents an administrative request to remove a dish
// from the catalog.
type DeleteFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteFoodItemCommand creates a command to delete a catalog entry.
func NewDeleteFoodItemCommand(foodItemID kernel.UUID) (DeleteFoodItemCommand, error) {
	cmd := DeleteFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFoodItemID(foodItemID); err != nil {
		return DeleteFoodItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFoodItemCommandIsNotConstructed)
}

// FoodItemID returns the catalog entry to delete.
func (c DeleteFoodItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

func (c *DeleteFoodItemCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}
