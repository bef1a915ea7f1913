package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to put one food item into a user's
// cart. The cart tracks membership only, so adding an item the cart already
// holds is a no-op.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	foodItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a catalog item to a cart.
// Validates that both identifiers are valid UUIDs.
func NewAddCartItemCommand(userID, foodItemID kernel.UUID) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setFoodItemID(foodItemID),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c AddCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// FoodItemID returns the catalog item to add.
func (c AddCartItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}
