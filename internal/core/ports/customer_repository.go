package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns the complete customer with the order history.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// GetAll retrieves every registered customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// NextID allocates the identifier for the next customer to be registered.
	NextID(ctx context.Context) (kernel.ID, error)
}
