// Package customer provides the Customer aggregate: contact details plus an
// append-only order history in chronological order.
package customer

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the registered contact details and the identifiers of every
// order this customer has placed, in placement order.
//
// Registration always succeeds: email, phone, and address are stored as given
// without format validation or duplicate detection.
type Customer struct {
	id           kernel.ID
	name         string
	email        string
	phone        string
	address      string
	orderHistory []kernel.ID

	guard guard.ConstructorGuard
}

// NewCustomer registers a customer with an empty order history.
func NewCustomer(id kernel.ID, name, email, phone, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:      id,
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer aggregate from persistent storage,
// including the order history.
func RestoreCustomer(id kernel.ID, name, email, phone, address string, orderHistory []kernel.ID) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone, address)
	if err != nil {
		return nil, err
	}

	for _, orderID := range orderHistory {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	c.orderHistory = make([]kernel.ID, len(orderHistory))
	copy(c.orderHistory, orderHistory)
	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's identifier.
func (c *Customer) ID() kernel.ID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email as given at registration.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone as given at registration.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the stored delivery address, used when an order does not
// carry an explicit override.
func (c *Customer) Address() string {
	return c.address
}

// OrderHistory returns a copy of the order identifiers in placement order.
func (c *Customer) OrderHistory() []kernel.ID {
	out := make([]kernel.ID, len(c.orderHistory))
	copy(out, c.orderHistory)
	return out
}

// RecordOrder appends an order identifier to the history.
// Called exactly once per order successfully placed for this customer.
func (c *Customer) RecordOrder(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderHistory = append(c.orderHistory, orderID)
	return nil
}
