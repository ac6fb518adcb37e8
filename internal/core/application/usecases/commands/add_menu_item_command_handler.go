package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// AddMenuItemCommandHandler handles the business logic for extending a
// restaurant's menu. Loads the restaurant, attaches the new item, and persists
// the updated aggregate.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item operations.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item command.
// Returns the identifier assigned to the new item within the restaurant's menu.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (kernel.ID, error) {
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

	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return kernel.ID{}, err
	}

	item, err := restaurant.NewMenuItem(cmd.Name(), cmd.Price(), cmd.Description(), cmd.Category())
	if err != nil {
		return kernel.ID{}, err
	}

	itemID, err := aggregate.AddMenuItem(item)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return itemID, nil
}
