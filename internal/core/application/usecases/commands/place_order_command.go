package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must request at least one item")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderItem is a single requested menu item with its quantity.
type OrderItem struct {
	itemID   kernel.ID
	quantity int
}

// NewOrderItem creates an order item request.
// Validates the item identifier and that the quantity is positive.
func NewOrderItem(itemID kernel.ID, quantity int) (OrderItem, error) {
	if err := itemID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, ErrQuantityIsInvalid
	}

	return OrderItem{itemID: itemID, quantity: quantity}, nil
}

// ItemID returns the requested menu item's identifier.
func (i OrderItem) ItemID() kernel.ID {
	return i.itemID
}

// Quantity returns how many units of the item were requested.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// PlaceOrderCommand represents a customer's request to place an order against
// a restaurant. The delivery address is optional; when empty, the customer's
// stored address is used.
//
// Example:
//
//	item, _ := NewOrderItem(pizzaID, 2)
//	cmd, err := NewPlaceOrderCommand(customerID, restaurantID, []OrderItem{item}, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, logger)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.ID
	restaurantID    kernel.ID
	items           []OrderItem
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates the customer and restaurant identifiers and that at least one
// item was requested. Whether the items actually exist on the menu is decided
// by the handler against the restaurant's current menu.
func NewPlaceOrderCommand(
	customerID, restaurantID kernel.ID,
	items []OrderItem,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.deliveryAddress = deliveryAddress
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (c PlaceOrderCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Items returns the requested items.
func (c PlaceOrderCommand) Items() []OrderItem {
	return c.items
}

// DeliveryAddress returns the delivery address override.
// Empty means deliver to the customer's stored address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
