package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves all orders a customer has placed, oldest first.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid customer id: %w", err)
//	}
//
//	handler := NewGetCustomerOrdersQueryHandler(customerRepo, orderRepo)
//	orders, err := handler.Handle(ctx, query)
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query to retrieve a customer's orders.
// Validates the customer identifier.
func NewGetCustomerOrdersQuery(customerID kernel.ID) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders to retrieve.
func (q GetCustomerOrdersQuery) CustomerID() kernel.ID {
	return q.customerID
}

func (q *GetCustomerOrdersQuery) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
