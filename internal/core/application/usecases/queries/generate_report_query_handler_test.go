package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
)

func newOrderWithStatus(t *testing.T, seq int, price float64, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewID(kernel.OrderPrefix, seq)
	require.NoError(t, err)
	customerID, err := kernel.NewID(kernel.CustomerPrefix, 1)
	require.NoError(t, err)
	restaurantID, err := kernel.NewID(kernel.RestaurantPrefix, 1)
	require.NoError(t, err)
	itemID, err := kernel.NewID(kernel.MenuItemPrefix, 1)
	require.NoError(t, err)

	li, err := order.NewLineItem(itemID, "Margherita Pizza", 12.99, 1)
	require.NoError(t, err)

	var agentID *kernel.ID
	var eta *time.Time
	if status != order.StatusPlaced && status != order.StatusCancelled {
		id, idErr := kernel.NewID(kernel.AgentPrefix, 1)
		require.NoError(t, idErr)
		agentID = &id
		estimate := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)
		eta = &estimate
	}

	o, err := order.RestoreOrder(orderID, customerID, restaurantID, []order.LineItem{li}, price,
		status, time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC), "42 Elm Street", agentID, eta)
	require.NoError(t, err)
	return o
}

func newReportCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	id, err := kernel.NewID(kernel.CustomerPrefix, 1)
	require.NoError(t, err)
	c, err := customer.NewCustomer(id, "Alice Smith", "alice@example.com", "555-0101", "42 Elm Street")
	require.NoError(t, err)
	return c
}

func TestGenerateReportQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	orders := []*order.Order{
		newOrderWithStatus(t, 1, 20.10, order.StatusDelivered),
		newOrderWithStatus(t, 2, 15.95, order.StatusDelivered),
		newOrderWithStatus(t, 3, 31.50, order.StatusPlaced),
		newOrderWithStatus(t, 4, 12.40, order.StatusAssigned),
		newOrderWithStatus(t, 5, 44.00, order.StatusCancelled),
	}

	restaurantRepo := new(MockRestaurantRepository)
	restaurantRepo.On("GetAll", ctx).Return([]*restaurant.Restaurant{
		newRestaurant(t, 1, "Pizza Palace", "italian", "downtown")}, nil).Once()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("GetAll", ctx).Return([]*customer.Customer{newReportCustomer(t)}, nil).Once()
	agentRepo := new(MockAgentRepository)
	agentRepo.On("GetAll", ctx).Return([]*agent.DeliveryAgent{}, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", ctx).Return(orders, nil).Once()

	handler := queries.NewGenerateReportQueryHandler(restaurantRepo, customerRepo, agentRepo, orderRepo)
	report, err := handler.Handle(ctx, queries.NewGenerateReportQuery())

	require.NoError(t, err)
	assert.Equal(t, 5, report.TotalOrders)
	assert.Equal(t, 1, report.TotalCustomers)
	assert.Equal(t, 1, report.TotalRestaurants)
	assert.Equal(t, 0, report.TotalDeliveryAgents)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, map[string]int{
		"delivered": 2,
		"placed":    1,
		"assigned":  1,
		"cancelled": 1,
	}, report.OrdersByStatus)

	// Cancelled and in-flight orders do not count toward revenue
	assert.Equal(t, 36.05, report.TotalRevenue)
}

func TestGenerateReportQueryHandler_Handle_EmptySystem(t *testing.T) {
	ctx := context.Background()

	restaurantRepo := new(MockRestaurantRepository)
	restaurantRepo.On("GetAll", ctx).Return([]*restaurant.Restaurant{}, nil).Once()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("GetAll", ctx).Return([]*customer.Customer{}, nil).Once()
	agentRepo := new(MockAgentRepository)
	agentRepo.On("GetAll", ctx).Return([]*agent.DeliveryAgent{}, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()

	handler := queries.NewGenerateReportQueryHandler(restaurantRepo, customerRepo, agentRepo, orderRepo)
	report, err := handler.Handle(ctx, queries.NewGenerateReportQuery())

	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalOrders)
	assert.Empty(t, report.OrdersByStatus)
	assert.Equal(t, 0.0, report.TotalRevenue)
}
