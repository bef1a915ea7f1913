package cart

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the aggregate root for a user's basket.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have a valid owning user before any item mutation (enforced at
//     construction: a cart cannot exist without an owner)
//   - Item membership is ordered and duplicate-free
type Cart struct {
	id      kernel.UUID
	userID  kernel.UUID
	itemIDs []kernel.UUID

	isConstructed bool
}

// NewCart creates an empty cart for the given owner. Called lazily by the
// add-item workflow when a user puts their first item in the basket.
func NewCart(id kernel.UUID, userID kernel.UUID) (*Cart, error) {
	c := &Cart{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart from persistence with its stored item
// membership. Duplicate ids in the stored list are collapsed, preserving
// first occurrence order.
func RestoreCart(id kernel.UUID, userID kernel.UUID, itemIDs []kernel.UUID) (*Cart, error) {
	c, err := NewCart(id, userID)
	if err != nil {
		return nil, err
	}

	for _, itemID := range itemIDs {
		if err := c.AddItem(itemID); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the cart was built through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// ItemIDs returns a copy of the ordered item membership.
func (c *Cart) ItemIDs() []kernel.UUID {
	return c.Snapshot()
}

// Snapshot returns an independent copy of the current membership, taken for
// order creation. Later mutations of the cart do not affect the returned
// slice.
func (c *Cart) Snapshot() []kernel.UUID {
	snapshot := make([]kernel.UUID, len(c.itemIDs))
	copy(snapshot, c.itemIDs)
	return snapshot
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.itemIDs) == 0
}

// Contains reports whether the given food item is a member of the cart.
func (c *Cart) Contains(foodItemID kernel.UUID) bool {
	for _, id := range c.itemIDs {
		if id.IsEqual(foodItemID) {
			return true
		}
	}
	return false
}

// AddItem appends a food item reference to the membership. Adding an item
// that is already present leaves the cart unchanged.
func (c *Cart) AddItem(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	if c.Contains(foodItemID) {
		return nil
	}

	c.itemIDs = append(c.itemIDs, foodItemID)
	return nil
}

// RemoveItem drops a food item reference from the membership. Removing an
// item that is not a member is a no-op.
func (c *Cart) RemoveItem(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	for i, id := range c.itemIDs {
		if id.IsEqual(foodItemID) {
			c.itemIDs = append(c.itemIDs[:i], c.itemIDs[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear empties the item membership in place. The cart row survives for the
// user's next order.
func (c *Cart) Clear() {
	c.itemIDs = c.itemIDs[:0]
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
