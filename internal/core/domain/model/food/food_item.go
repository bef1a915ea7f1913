// Package food contains the FoodItem catalog entity. Food items are
// referenced by carts and orders through their identifiers; the checkout
// workflow never mutates them.
package food

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrNameIsRequired is returned when creating a food item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPriceIsNegative is returned when the unit price is below zero.
	ErrPriceIsNegative = errs.NewValueIsInvalidErrorWithCause("price", errors.New("must not be negative"))
	// ErrFoodItemIsNotConstructed is returned when using an improperly initialized FoodItem.
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem or RestoreFoodItem")
)

// FoodItem is a menu entry in the catalog.
//
// Business rules:
//   - Must have a valid UUID and a non-empty name
//   - Price is a non-negative decimal (the stored unit price; no price
//     history is kept, rendering always uses the current catalog price)
//   - Description, category, and image reference are optional
type FoodItem struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	image       string

	guard guard.ConstructorGuard
}

// NewFoodItem creates a catalog entry after validating its invariants.
func NewFoodItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	image string,
) (*FoodItem, error) {
	item := &FoodItem{
		description: description,
		category:    category,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreFoodItem reconstructs a food item from persistence. The same
// invariants as NewFoodItem apply, so corrupted rows are rejected on load.
func RestoreFoodItem(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	image string,
) (*FoodItem, error) {
	return NewFoodItem(id, name, description, price, category, image)
}

// Validate ensures the item was built through a constructor.
func (f *FoodItem) Validate() error {
	if f == nil {
		return ErrFoodItemIsNotConstructed
	}
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

// IsEqual compares food items by identifier.
func (f *FoodItem) IsEqual(other *FoodItem) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (f *FoodItem) ID() kernel.UUID {
	return f.id
}

// Name returns the display name of the item.
func (f *FoodItem) Name() string {
	return f.name
}

// Description returns the menu description.
func (f *FoodItem) Description() string {
	return f.description
}

// Price returns the current unit price.
func (f *FoodItem) Price() decimal.Decimal {
	return f.price
}

// Category returns the menu category.
func (f *FoodItem) Category() string {
	return f.category
}

// Image returns the image reference for the item.
func (f *FoodItem) Image() string {
	return f.image
}

// Update replaces the mutable catalog attributes, keeping the identifier.
// Used by the administrative catalog maintenance flow only.
func (f *FoodItem) Update(name, description string, price decimal.Decimal, category, image string) error {
	if err := errors.Join(
		f.setName(name),
		f.setPrice(price),
	); err != nil {
		return err
	}

	f.description = description
	f.category = category
	f.image = image
	return nil
}

func (f *FoodItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *FoodItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	f.name = name
	return nil
}

func (f *FoodItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrPriceIsNegative
	}
	f.price = price
	return nil
}
