package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
)

// AddMenuItemCommand represents a request to add a new item to a restaurant's menu.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand(restaurantID, "Margherita Pizza", 12.99, "Classic", "mains")
//	if err != nil {
//	    return fmt.Errorf("invalid menu item data: %w", err)
//	}
//
//	handler := NewAddMenuItemCommandHandler(uowFactory)
//	itemID, err := handler.Handle(ctx, cmd)
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	name         string
	price        float64
	description  string
	category     string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Validates the restaurant identifier and that the item name is not empty.
// Price validation happens at the domain level so the rule lives in one place.
func NewAddMenuItemCommand(
	restaurantID kernel.ID,
	name string,
	price float64,
	description, category string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	cmd.price = price
	cmd.description = description
	cmd.category = category
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddMenuItemCommandIsNotConstructed if validation fails.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant receiving the item.
func (c AddMenuItemCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Name returns the menu item's display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the menu item's price in currency units.
func (c AddMenuItemCommand) Price() float64 {
	return c.price
}

// Description returns the menu item's free-form description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Category returns the menu item's category label.
func (c AddMenuItemCommand) Category() string {
	return c.category
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}
