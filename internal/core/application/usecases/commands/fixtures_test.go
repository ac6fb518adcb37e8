package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
)

func testID(t *testing.T, prefix string, sequence int) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(prefix, sequence)
	require.NoError(t, err)
	return id
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(
		testID(t, kernel.CustomerPrefix, 1),
		"Alice Smith", "alice@example.com", "555-0100", "42 Elm Street",
	)
	require.NoError(t, err)
	return c
}

// testRestaurant builds a restaurant with two priced pizzas on the menu,
// item_1 at 12.99 and item_2 at 14.99.
func testRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		testID(t, kernel.RestaurantPrefix, 1),
		"Pizza Palace", "Italian", "Downtown",
	)
	require.NoError(t, err)

	margherita, err := restaurant.NewMenuItem("Margherita Pizza", 12.99, "Classic", "mains")
	require.NoError(t, err)
	_, err = r.AddMenuItem(margherita)
	require.NoError(t, err)

	lasagna, err := restaurant.NewMenuItem("Lasagna", 14.99, "Baked", "mains")
	require.NoError(t, err)
	_, err = r.AddMenuItem(lasagna)
	require.NoError(t, err)

	return r
}

func testAgent(t *testing.T, sequence int) *agent.DeliveryAgent {
	t.Helper()
	a, err := agent.NewDeliveryAgent(
		testID(t, kernel.AgentPrefix, sequence),
		"Sam Rider", "555-0101", "bike",
	)
	require.NoError(t, err)
	return a
}

func testPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(testID(t, kernel.MenuItemPrefix, 1), "Margherita Pizza", 12.99, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		testID(t, kernel.OrderPrefix, 1),
		testID(t, kernel.CustomerPrefix, 1),
		testID(t, kernel.RestaurantPrefix, 1),
		[]order.LineItem{li},
		"42 Elm Street",
		time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}
