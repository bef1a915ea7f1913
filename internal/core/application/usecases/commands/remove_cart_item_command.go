package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to take one food item out of a
// user's cart. Removal is tolerant: a missing cart or an item the cart never
// held both succeed without effect.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	foodItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a catalog item from a cart.
func NewRemoveCartItemCommand(userID, foodItemID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setFoodItemID(foodItemID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c RemoveCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// FoodItemID returns the catalog item to remove.
func (c RemoveCartItemCommand) FoodItemID() kernel.UUID {
	return c.foodItemID
}

func (c *RemoveCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RemoveCartItemCommand) setFoodItemID(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}
