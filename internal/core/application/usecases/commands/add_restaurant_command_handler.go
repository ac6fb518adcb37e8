package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// AddRestaurantCommandHandler handles the business logic for restaurant registration.
// Allocates the next restaurant identifier and creates the aggregate with its
// initial menu, if any.
//
// Example:
//
//	handler := NewAddRestaurantCommandHandler(uowFactory)
//	cmd, _ := NewAddRestaurantCommand("Pizza Palace", "Italian", "Downtown", nil)
//
//	restaurantID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("restaurant registration failed: %w", err)
//	}
type AddRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddRestaurantCommandHandler creates a handler for restaurant registration operations.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewAddRestaurantCommandHandler(uowFactory RestaurantUoWFactory) AddRestaurantCommandHandler {
	return AddRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command.
// Returns the identifier assigned to the new restaurant.
func (h AddRestaurantCommandHandler) Handle(ctx context.Context, cmd AddRestaurantCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	restaurantID, err := restaurantRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	aggregate, err := restaurant.NewRestaurant(restaurantID, cmd.Name(), cmd.Cuisine(), cmd.Location())
	if err != nil {
		return kernel.ID{}, err
	}

	for _, input := range cmd.Items() {
		item, err := restaurant.NewMenuItem(input.Name, input.Price, input.Description, input.Category)
		if err != nil {
			return kernel.ID{}, err
		}

		if _, err = aggregate.AddMenuItem(item); err != nil {
			return kernel.ID{}, err
		}
	}

	if err = restaurantRepo.Add(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return restaurantID, nil
}
