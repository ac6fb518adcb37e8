package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddAgentCommandIsNotConstructed = errors.New(
		"AddAgentCommand must be created via NewAddAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errors.New("agent name is required")
)

// AddAgentCommand represents a request to onboard a new delivery agent.
// New agents start out available with no deliveries on record.
//
// Example:
//
//	cmd, err := NewAddAgentCommand("Sam Rider", "555-0101", "bike")
//	if err != nil {
//	    return fmt.Errorf("invalid agent data: %w", err)
//	}
//
//	handler := NewAddAgentCommandHandler(uowFactory)
//	agentID, err := handler.Handle(ctx, cmd)
type AddAgentCommand struct { //nolint:recvcheck //using for validation
	name        string
	phone       string
	vehicleType string

	guard guard.ConstructorGuard
}

// NewAddAgentCommand creates a command to onboard a delivery agent.
// Validates that the name is not empty.
func NewAddAgentCommand(name, phone, vehicleType string) (AddAgentCommand, error) {
	cmd := AddAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return AddAgentCommand{}, err
	}

	cmd.phone = phone
	cmd.vehicleType = vehicleType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddAgentCommandIsNotConstructed if validation fails.
func (c AddAgentCommand) Validate() error {
	return c.guard.Validate(ErrAddAgentCommandIsNotConstructed)
}

// Name returns the agent's display name.
func (c AddAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's phone number.
func (c AddAgentCommand) Phone() string {
	return c.phone
}

// VehicleType returns the agent's vehicle type label.
func (c AddAgentCommand) VehicleType() string {
	return c.vehicleType
}

func (c *AddAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}

	c.name = name
	return nil
}
