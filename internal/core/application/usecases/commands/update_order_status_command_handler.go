package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles the business logic for order status
// changes. Applies the transition on the order aggregate and, when an order is
// delivered, releases its agent and credits the completed delivery.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status operations.
// Requires a UoWFactory since a delivery completion touches both the order and
// its agent.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Transitions outside the status table are rejected and nothing is persisted.
// Moving an order to delivered makes its agent available again and increments
// the agent's delivery counter in the same transaction; the order keeps its
// agent reference for history.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == order.StatusDelivered && aggregate.AgentID() != nil {
		rider, err := agentRepo.Get(ctx, *aggregate.AgentID())
		if err != nil {
			return err
		}

		if err = rider.CompleteDelivery(); err != nil {
			return err
		}

		if err = agentRepo.Update(ctx, rider); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
