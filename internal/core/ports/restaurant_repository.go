// Package ports defines repository interfaces for the food delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
// Provides methods for storing, retrieving, and listing restaurant entities
// with their complete state including the menu.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	// The restaurant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	// The restaurant must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	// Returns the complete restaurant with its menu and order counter.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// GetAll retrieves every registered restaurant.
	// Used by search and reporting workflows.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// NextID allocates the identifier for the next restaurant to be added.
	NextID(ctx context.Context) (kernel.ID, error)
}
