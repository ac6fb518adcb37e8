package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	aggregate := newOrderWithStatus(t, 1, 15.98, order.StatusAssigned)
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	handler := queries.NewGetOrderQueryHandler(orderRepo)
	details, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "order_1", details.ID)
	assert.Equal(t, "cust_1", details.CustomerID)
	assert.Equal(t, "rest_1", details.RestaurantID)
	assert.Equal(t, "assigned", details.Status)
	assert.Equal(t, 15.98, details.TotalPrice)
	assert.Equal(t, "42 Elm Street", details.DeliveryAddress)

	require.Len(t, details.Items, 1)
	assert.Equal(t, "item_1", details.Items[0].ItemID)
	assert.Equal(t, "Margherita Pizza", details.Items[0].Name)
	assert.Equal(t, 12.99, details.Items[0].Subtotal)

	require.NotNil(t, details.AgentID)
	assert.Equal(t, "agent_1", *details.AgentID)
	assert.NotNil(t, details.EstimatedDelivery)
}

func TestGetOrderQueryHandler_Handle_PlacedOrderHasNoAgent(t *testing.T) {
	ctx := context.Background()

	aggregate := newOrderWithStatus(t, 1, 15.98, order.StatusPlaced)
	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	handler := queries.NewGetOrderQueryHandler(orderRepo)
	details, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Nil(t, details.AgentID)
	assert.Nil(t, details.EstimatedDelivery)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()

	orderID, err := kernel.NewID(kernel.OrderPrefix, 9)
	require.NoError(t, err)
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("order_id", orderID)).Once()

	handler := queries.NewGetOrderQueryHandler(orderRepo)
	_, err = handler.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetCustomerOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	customerID, err := kernel.NewID(kernel.CustomerPrefix, 1)
	require.NoError(t, err)
	buyer, err := customer.NewCustomer(customerID, "Alice Smith", "alice@example.com", "555-0100", "42 Elm Street")
	require.NoError(t, err)

	orders := []*order.Order{
		newOrderWithStatus(t, 1, 15.98, order.StatusDelivered),
		newOrderWithStatus(t, 2, 43.96, order.StatusPlaced),
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	orderRepo.On("GetAllByCustomer", ctx, customerID).Return(orders, nil).Once()

	handler := queries.NewGetCustomerOrdersQueryHandler(customerRepo, orderRepo)
	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "order_1", responses[0].ID)
	assert.Equal(t, "delivered", responses[0].Status)
	assert.Equal(t, "order_2", responses[1].ID)
	assert.Equal(t, "placed", responses[1].Status)
}

func TestGetCustomerOrdersQueryHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := context.Background()

	customerID, err := kernel.NewID(kernel.CustomerPrefix, 9)
	require.NoError(t, err)
	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	customerRepo.On("Get", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("customer_id", customerID)).Once()

	handler := queries.NewGetCustomerOrdersQueryHandler(customerRepo, orderRepo)
	_, err = handler.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "GetAllByCustomer", ctx, customerID)
}
