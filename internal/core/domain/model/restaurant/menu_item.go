package restaurant

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrMenuItemNameIsRequired is returned when creating a menu item without a name.
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("menu item name")
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem represents a single dish on a restaurant's menu.
//
// Invariants:
//   - Name must be non-empty
//   - Price must be non-negative
//   - New items start out available
//
// Orders capture a menu item's name and price at placement time, so mutations
// to an item never affect existing orders.
type MenuItem struct {
	name        string
	price       float64
	description string
	category    string
	available   bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item with availability enabled.
// Name must be non-empty and price must be non-negative.
func NewMenuItem(name string, price float64, description, category string) (*MenuItem, error) {
	item := &MenuItem{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.category = category
	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistent storage,
// preserving its availability flag.
func RestoreMenuItem(name string, price float64, description, category string, available bool) (*MenuItem, error) {
	item, err := NewMenuItem(name, price, description, category)
	if err != nil {
		return nil, err
	}

	item.available = available
	return item, nil
}

// Validate ensures the MenuItem was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current menu price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Description returns the dish description.
func (m *MenuItem) Description() string {
	return m.description
}

// Category returns the menu category the dish belongs to.
func (m *MenuItem) Category() string {
	return m.category
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// MarkUnavailable takes the item off the orderable menu without removing it.
func (m *MenuItem) MarkUnavailable() {
	m.available = false
}

// MarkAvailable puts the item back on the orderable menu.
func (m *MenuItem) MarkAvailable() {
	m.available = true
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	m.price = price
	return nil
}
