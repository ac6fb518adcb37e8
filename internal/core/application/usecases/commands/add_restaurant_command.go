package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddRestaurantCommandIsNotConstructed = errors.New(
		"AddRestaurantCommand must be created via NewAddRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
	ErrCuisineIsRequired        = errors.New("cuisine is required")
	ErrLocationIsRequired       = errors.New("location is required")
)

// MenuItemInput describes a menu item to be created along with a restaurant.
// Validation of name and price happens at the domain level when the item
// is constructed.
type MenuItemInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
}

// AddRestaurantCommand represents a request to register a new restaurant,
// optionally with an initial set of menu items.
//
// Example:
//
//	cmd, err := NewAddRestaurantCommand("Pizza Palace", "Italian", "Downtown", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid restaurant data: %w", err)
//	}
//
//	handler := NewAddRestaurantCommandHandler(uowFactory)
//	restaurantID, err := handler.Handle(ctx, cmd)
type AddRestaurantCommand struct { //nolint:recvcheck //using for validation
	name     string
	cuisine  string
	location string
	items    []MenuItemInput

	guard guard.ConstructorGuard
}

// NewAddRestaurantCommand creates a command to register a new restaurant.
// Validates that name, cuisine, and location are not empty.
// Returns an error if any validation fails.
func NewAddRestaurantCommand(name, cuisine, location string, items []MenuItemInput) (AddRestaurantCommand, error) {
	cmd := AddRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCuisine(cuisine),
		cmd.setLocation(location),
	); err != nil {
		return AddRestaurantCommand{}, err
	}

	cmd.items = items
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddRestaurantCommandIsNotConstructed if validation fails.
func (c AddRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAddRestaurantCommandIsNotConstructed)
}

// Name returns the restaurant's display name.
func (c AddRestaurantCommand) Name() string {
	return c.name
}

// Cuisine returns the restaurant's cuisine label.
func (c AddRestaurantCommand) Cuisine() string {
	return c.cuisine
}

// Location returns the restaurant's location label.
func (c AddRestaurantCommand) Location() string {
	return c.location
}

// Items returns the initial menu items to create with the restaurant.
func (c AddRestaurantCommand) Items() []MenuItemInput {
	return c.items
}

func (c *AddRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddRestaurantCommand) setCuisine(cuisine string) error {
	if cuisine == "" {
		return ErrCuisineIsRequired
	}

	c.cuisine = cuisine
	return nil
}

func (c *AddRestaurantCommand) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
