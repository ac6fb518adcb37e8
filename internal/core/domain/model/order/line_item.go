package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrLineItemNameIsRequired is returned when creating a line item without a captured name.
	ErrLineItemNameIsRequired = errs.NewValueIsRequiredError("line item name")
	// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one (item, quantity) entry within an order. It captures the menu
// item's name and price at placement time and is immutable afterwards, so
// later menu edits never change existing orders.
type LineItem struct {
	itemID   kernel.ID
	name     string
	price    float64
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem captures a menu item into an order line.
// Quantity must be positive and the captured price non-negative.
func NewLineItem(itemID kernel.ID, name string, price float64, quantity int) (LineItem, error) {
	li := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setItemID(itemID),
		li.setName(name),
		li.setPrice(price),
		li.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ItemID returns the menu item identifier this line was captured from.
func (li LineItem) ItemID() kernel.ID {
	return li.itemID
}

// Name returns the captured dish name.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the captured per-unit price.
func (li LineItem) Price() float64 {
	return li.price
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns price multiplied by quantity, before rounding.
func (li LineItem) Subtotal() float64 {
	return li.price * float64(li.quantity)
}

func (li *LineItem) setItemID(itemID kernel.ID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	li.itemID = itemID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return ErrLineItemNameIsRequired
	}
	li.name = name
	return nil
}

func (li *LineItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	li.price = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
