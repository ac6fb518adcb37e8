package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoAvailableAgentsFound = errors.New("no available agents found")
	ErrNoOrderFound           = errors.New("no order found")
)

// AssignAgentCommandHandler orchestrates the agent assignment process.
// Finds the targeted order and matches it with an available agent using the
// dispatcher's random selection. Ensures transactional consistency when
// updating both order and agent states.
//
// Example:
//
//	handler := NewAssignAgentCommandHandler(uowFactory, dispatcher)
//	cmd := NewAssignNextOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailableAgentsFound):
//	    log.Println("All agents are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Agent assigned successfully")
//	}
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.AgentDispatcher
}

// NewAssignAgentCommandHandler creates a handler for agent assignment operations.
// Requires a UoWFactory for coordinating transactional updates across
// repositories and a dispatcher carrying the random source for selection.
func NewAssignAgentCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.AgentDispatcher,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the agent assignment command.
// Retrieves the targeted order, or the oldest placed one when no target is
// set, and lets the dispatcher pick among available agents. Updates both
// entities within a single transaction.
// Returns specific errors for no orders (ErrNoOrderFound) or no agents
// (ErrNoAvailableAgentsFound); the order stays placed in both cases.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, command AssignAgentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()
	orderRepo := uow.OrderRepository()

	pending, err := h.findOrder(ctx, command, orderRepo)
	if err != nil {
		return err
	}

	agents, err := agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		return ErrNoAvailableAgentsFound
	}

	assignedAgent, err := h.dispatcher.Dispatch(pending, agents, time.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pending); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, assignedAgent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// findOrder resolves the order to assign: the explicitly targeted one, or the
// oldest order still in placed status.
func (h AssignAgentCommandHandler) findOrder(
	ctx context.Context,
	command AssignAgentCommand,
	orderRepo ports.OrderRepository,
) (*order.Order, error) {
	if command.OrderID() != nil {
		return orderRepo.Get(ctx, *command.OrderID())
	}

	pending, err := orderRepo.GetFirstInPlacedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderFound
	}
	if err != nil {
		return nil, err
	}

	return pending, nil
}
