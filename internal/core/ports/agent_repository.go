package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
// Provides methods for storing, retrieving, and querying agents based on
// their availability.
type AgentRepository interface {
	// Add persists a new delivery agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Update persists changes to an existing delivery agent aggregate.
	// The agent must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Get retrieves a delivery agent aggregate by its unique identifier.
	// Returns the complete agent with its availability and delivery counter.
	Get(ctx context.Context, id kernel.ID) (*agent.DeliveryAgent, error)

	// GetAll retrieves every registered delivery agent.
	GetAll(ctx context.Context) ([]*agent.DeliveryAgent, error)

	// GetAllAvailable retrieves all delivery agents not currently working an order.
	// Used by the assignment workflow to pick a candidate.
	GetAllAvailable(ctx context.Context) ([]*agent.DeliveryAgent, error)

	// NextID allocates the identifier for the next agent to be added.
	NextID(ctx context.Context) (kernel.ID, error)
}
