package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves every order in the system.
	// Used for reporting workflows.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetFirstInPlacedStatus retrieves the oldest order still awaiting
	// agent assignment. Used by the assignment workflow to find pending orders.
	GetFirstInPlacedStatus(ctx context.Context) (*order.Order, error)

	// GetAllByCustomer retrieves all orders placed by the given customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)

	// NextID allocates the identifier for the next order to be placed.
	NextID(ctx context.Context) (kernel.ID, error)
}
