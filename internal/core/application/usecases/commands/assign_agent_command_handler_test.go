package commands_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

func newTestDispatcher() services.AgentDispatcher {
	return services.NewAgentDispatcher(rand.New(rand.NewSource(1)))
}

func TestAssignAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewAssignNextOrderCommand()

	pending := testPlacedOrder(t)
	rider := testAgent(t, 1)
	available := []*agent.DeliveryAgent{rider}

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInPlacedStatus", ctx).Return(pending, nil).Once(),
		agentRepo.On("GetAllAvailable", ctx).Return(available, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		agentRepo.On("Update", ctx, mock.AnythingOfType("*agent.DeliveryAgent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory, newTestDispatcher())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, pending.Status())
	require.NotNil(t, pending.AgentID())
	assert.True(t, rider.ID().IsEqual(*pending.AgentID()))
	assert.False(t, rider.IsAvailable())
	assert.NotNil(t, pending.EstimatedDelivery())

	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_SpecificOrder(t *testing.T) {
	ctx := context.Background()

	pending := testPlacedOrder(t)
	cmd, err := commands.NewAssignAgentCommand(pending.ID())
	require.NoError(t, err)

	rider := testAgent(t, 1)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		agentRepo.On("GetAllAvailable", ctx).Return([]*agent.DeliveryAgent{rider}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		agentRepo.On("Update", ctx, mock.AnythingOfType("*agent.DeliveryAgent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory, newTestDispatcher())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, pending.Status())
	orderRepo.AssertNotCalled(t, "GetFirstInPlacedStatus", mock.Anything)
}

func TestAssignAgentCommandHandler_Handle_NoOrderFound(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewAssignNextOrderCommand()

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInPlacedStatus", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory, newTestDispatcher())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoOrderFound)
}

func TestAssignAgentCommandHandler_Handle_NoAvailableAgents(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewAssignNextOrderCommand()

	pending := testPlacedOrder(t)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstInPlacedStatus", ctx).Return(pending, nil).Once(),
		agentRepo.On("GetAllAvailable", ctx).Return([]*agent.DeliveryAgent{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignAgentCommandHandler(factory, newTestDispatcher())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableAgentsFound)
	assert.Equal(t, order.StatusPlaced, pending.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignAgentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AssignAgentCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignAgentCommandHandler(factory, newTestDispatcher())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignAgentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignAgentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewAssignNextOrderCommand()

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAssignAgentCommandHandler(factory, newTestDispatcher())
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
