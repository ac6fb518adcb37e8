package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"
)

func TestUpdateOrderStatusCommandHandler_Handle_OutForDelivery(t *testing.T) {
	ctx := context.Background()

	aggregate := testPlacedOrder(t)
	rider := testAgent(t, 1)
	require.NoError(t, rider.Assign(aggregate.ID()))
	require.NoError(t, aggregate.Assign(rider.ID(), time.Now().Add(20*time.Minute)))

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.StatusOutForDelivery)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, aggregate.Status())
	// Agent stays busy until delivery completes
	assert.False(t, rider.IsAvailable())
	agentRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredReleasesAgent(t *testing.T) {
	ctx := context.Background()

	aggregate := testPlacedOrder(t)
	rider := testAgent(t, 1)
	require.NoError(t, rider.Assign(aggregate.ID()))
	require.NoError(t, aggregate.Assign(rider.ID(), time.Now().Add(20*time.Minute)))

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.StatusDelivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		agentRepo.On("Get", ctx, rider.ID()).Return(rider, nil).Once(),
		agentRepo.On("Update", ctx, mock.AnythingOfType("*agent.DeliveryAgent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, aggregate.Status())
	assert.True(t, rider.IsAvailable())
	assert.Nil(t, rider.CurrentOrder())
	assert.Equal(t, 1, rider.TotalDeliveries())

	// The order keeps the agent reference for history
	require.NotNil(t, aggregate.AgentID())
	assert.True(t, rider.ID().IsEqual(*aggregate.AgentID()))

	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()

	aggregate := testPlacedOrder(t)

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.StatusDelivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.StatusPlaced, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommand_Validation(t *testing.T) {
	aggregate := testPlacedOrder(t)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.StatusUnknown)
		assert.Error(t, err)
	})

	t.Run("not constructed command fails validation", func(t *testing.T) {
		cmd := commands.UpdateOrderStatusCommand{}
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
