package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when creating an order with an empty
	// item snapshot. Checkout rejects empty carts before construction; this
	// guard keeps the invariant even for callers that bypass checkout.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must contain at least one food item")
)

// Order is the aggregate root for a committed order.
//
// Invariants:
//   - Must have a valid unique identifier and owning user
//   - The item snapshot is never empty at creation and is immutable after
//   - Status transitions follow the table in status.go
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	userID    kernel.UUID
	itemIDs   []kernel.UUID
	createdAt time.Time
	status    Status

	isConstructed bool
}

// NewOrder creates an order from a cart snapshot with Placed status.
//
// The itemIDs slice is copied, so later mutations of the source (the cart
// being cleared after checkout) cannot alter the order.
func NewOrder(id kernel.UUID, userID kernel.UUID, itemIDs []kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemIDs(itemIDs),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its stored
// status. Used only by repositories.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	itemIDs []kernel.UUID,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, userID, itemIDs, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ItemIDs returns a copy of the food item snapshot.
func (o *Order) ItemIDs() []kernel.UUID {
	itemIDs := make([]kernel.UUID, len(o.itemIDs))
	copy(itemIDs, o.itemIDs)
	return itemIDs
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to a new lifecycle status, enforcing the
// transition table. Used by the administrative status update flow.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrOrderHasNoItems
	}

	copied := make([]kernel.UUID, len(itemIDs))
	copy(copied, itemIDs)

	for _, itemID := range copied {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	o.itemIDs = copied
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
