package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand triggers the assignment of an available delivery agent to
// a placed order. This command represents the business operation of matching
// delivery resources with orders.
//
// The command comes in two flavors: targeting a specific order, or picking the
// oldest order still awaiting assignment. The latter is what the background
// assignment job uses.
//
// Example:
//
//	cmd := NewAssignNextOrderCommand()
//	handler := NewAssignAgentCommandHandler(uowFactory, dispatcher)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available agents: %v", err)
//	}
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID *kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign an agent to a specific order.
// Validates the order identifier.
func NewAssignAgentCommand(orderID kernel.ID) (AssignAgentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignAgentCommand{}, err
	}

	return AssignAgentCommand{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewAssignNextOrderCommand creates a command to assign an agent to the oldest
// order still awaiting assignment.
func NewAssignNextOrderCommand() AssignAgentCommand {
	return AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through a constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
// Returns nil when the command targets the oldest placed order.
func (c AssignAgentCommand) OrderID() *kernel.ID {
	return c.orderID
}
