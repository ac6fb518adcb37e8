package commands

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

// ErrNoValidMenuItems is returned when, after filtering unknown and
// unavailable items, nothing remains to order. The order is rejected before
// any state changes.
var ErrNoValidMenuItems = errors.New("no valid menu items in order")

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the customer and restaurant, prices the requested items against the
// current menu, and creates the order in "placed" status.
//
// Requested items that are unknown or currently unavailable are skipped with
// a log entry rather than failing the whole order. If nothing survives the
// filter the order is rejected with ErrNoValidMenuItems.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, logger)
//	item, _ := NewOrderItem(pizzaID, 2)
//	cmd, _ := NewPlaceOrderCommand(customerID, restaurantID, []OrderItem{item}, "")
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoValidMenuItems) {
//	    // Nothing orderable was requested
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     zerolog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for coordinating updates across the order, customer,
// and restaurant aggregates.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, logger zerolog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// The order total is the sum of the accepted line items plus the delivery fee,
// priced from the menu at this moment. The customer's order history and the
// restaurant's order counter are updated in the same transaction.
// Returns the identifier assigned to the new order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.ID, error) {
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

	customerRepo := uow.CustomerRepository()
	restaurantRepo := uow.RestaurantRepository()
	orderRepo := uow.OrderRepository()

	buyer, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.ID{}, err
	}

	eatery, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return kernel.ID{}, err
	}

	lineItems, err := h.priceItems(eatery, cmd.Items())
	if err != nil {
		return kernel.ID{}, err
	}

	deliveryAddress := cmd.DeliveryAddress()
	if deliveryAddress == "" {
		deliveryAddress = buyer.Address()
	}

	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	newOrder, err := order.NewOrder(orderID, buyer.ID(), eatery.ID(), lineItems, deliveryAddress, time.Now())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.ID{}, err
	}

	if err = buyer.RecordOrder(orderID); err != nil {
		return kernel.ID{}, err
	}

	if err = customerRepo.Update(ctx, buyer); err != nil {
		return kernel.ID{}, err
	}

	eatery.RecordOrder()
	if err = restaurantRepo.Update(ctx, eatery); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return orderID, nil
}

// priceItems resolves the requested items against the restaurant's menu,
// capturing name and price at order time. Unknown and unavailable items are
// skipped with a log entry.
func (h PlaceOrderCommandHandler) priceItems(
	eatery *restaurant.Restaurant,
	requested []OrderItem,
) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(requested))
	for _, req := range requested {
		menuItem, err := eatery.MenuItem(req.ItemID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Error().
				Str("restaurant_id", eatery.ID().String()).
				Str("item_id", req.ItemID().String()).
				Msg("menu item not found, skipping")
			continue
		}
		if err != nil {
			return nil, err
		}

		if !menuItem.IsAvailable() {
			h.logger.Warn().
				Str("restaurant_id", eatery.ID().String()).
				Str("item_id", req.ItemID().String()).
				Msg("menu item unavailable, skipping")
			continue
		}

		lineItem, err := order.NewLineItem(req.ItemID(), menuItem.Name(), menuItem.Price(), req.Quantity())
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	if len(lineItems) == 0 {
		return nil, ErrNoValidMenuItems
	}

	return lineItems, nil
}
