package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GetOrderQueryHandler retrieves order details through the order repository.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(orderRepo)
//	query, _ := NewGetOrderQuery(orderID)
//
//	details, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown order
//	}
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query to retrieve one order.
// Returns the order read model or a not found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return toOrderResponse(aggregate), nil
}

func toOrderResponse(aggregate *order.Order) GetOrderQueryResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, li := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ItemID:   li.ItemID().String(),
			Name:     li.Name(),
			Price:    li.Price(),
			Quantity: li.Quantity(),
			Subtotal: li.Subtotal(),
		})
	}

	response := GetOrderQueryResponse{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		RestaurantID:    aggregate.RestaurantID().String(),
		Items:           items,
		TotalPrice:      aggregate.TotalPrice(),
		Status:          aggregate.Status().String(),
		OrderTime:       aggregate.OrderTime(),
		DeliveryAddress: aggregate.DeliveryAddress(),
	}

	if aggregate.AgentID() != nil {
		agentID := aggregate.AgentID().String()
		response.AgentID = &agentID
	}
	if aggregate.EstimatedDelivery() != nil {
		response.EstimatedDelivery = aggregate.EstimatedDelivery()
	}

	return response
}
