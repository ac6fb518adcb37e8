package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AddAgentCommandHandler handles the business logic for delivery agent
// onboarding. Allocates the next agent identifier and creates the aggregate
// in available status.
type AddAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewAddAgentCommandHandler creates a handler for agent onboarding operations.
// Requires an AgentUoWFactory for transactional persistence.
func NewAddAgentCommandHandler(uowFactory AgentUoWFactory) AddAgentCommandHandler {
	return AddAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent onboarding command.
// Returns the identifier assigned to the new agent.
func (h AddAgentCommandHandler) Handle(ctx context.Context, cmd AddAgentCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()

	agentID, err := agentRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	aggregate, err := agent.NewDeliveryAgent(agentID, cmd.Name(), cmd.Phone(), cmd.VehicleType())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = agentRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return agentID, nil
}
