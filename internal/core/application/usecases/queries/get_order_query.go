// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the current state of a single order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(orderRepo)
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
// Validates the order identifier.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one priced line of an order in the read model.
type OrderItemResponse struct {
	ItemID   string
	Name     string
	Price    float64
	Quantity int
	Subtotal float64
}

// GetOrderQueryResponse represents an order in the read model, including its
// lifecycle state and, when assigned, the delivering agent and estimate.
type GetOrderQueryResponse struct {
	ID                string
	CustomerID        string
	RestaurantID      string
	Items             []OrderItemResponse
	TotalPrice        float64
	Status            string
	OrderTime         time.Time
	DeliveryAddress   string
	AgentID           *string
	EstimatedDelivery *time.Time
}
