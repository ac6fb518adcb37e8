package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetCustomerOrdersQueryHandler retrieves a customer's complete order history.
// The customer is resolved first so an unknown customer surfaces as a not
// found error rather than an empty list.
type GetCustomerOrdersQueryHandler struct {
	customerRepo ports.CustomerRepository
	orderRepo    ports.OrderRepository
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order history queries.
func NewGetCustomerOrdersQueryHandler(
	customerRepo ports.CustomerRepository,
	orderRepo ports.OrderRepository,
) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// Handle executes the query to retrieve the customer's orders.
// Returns the order read models in placement order.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	buyer, err := h.customerRepo.Get(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAllByCustomer(ctx, buyer.ID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrderQueryResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, toOrderResponse(aggregate))
	}

	return responses, nil
}
