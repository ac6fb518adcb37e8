package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new customer.
// All details are stored as provided; registration never fails on their
// content so that signups always go through.
//
// Example:
//
//	cmd := NewRegisterCustomerCommand("Alice Smith", "alice@example.com", "555-0100", "42 Elm Street")
//	handler := NewRegisterCustomerCommandHandler(uowFactory)
//	customerID, err := handler.Handle(ctx, cmd)
type RegisterCustomerCommand struct {
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// No field is validated here or downstream, registration always succeeds.
func NewRegisterCustomerCommand(name, email, phone, address string) RegisterCustomerCommand {
	return RegisterCustomerCommand{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCustomerCommandIsNotConstructed if validation fails.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email address as provided.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number as provided.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's default delivery address.
func (c RegisterCustomerCommand) Address() string {
	return c.address
}
