package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMenuItem is the request payload for a menu item, either inside a new
// restaurant or added to an existing one.
type NewMenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// NewRestaurant is the request payload for registering a restaurant.
type NewRestaurant struct {
	Name     string        `json:"name"`
	Cuisine  string        `json:"cuisine"`
	Location string        `json:"location"`
	Menu     []NewMenuItem `json:"menu"`
}

// NewCustomer is the request payload for registering a customer.
type NewCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewAgent is the request payload for registering a delivery agent.
type NewAgent struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
}

// NewOrderItem references a menu item and a quantity in an order request.
type NewOrderItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the request payload for placing an order.
// DeliveryAddress is optional and defaults to the customer's address.
type NewOrder struct {
	CustomerID      string         `json:"customer_id"`
	RestaurantID    string         `json:"restaurant_id"`
	Items           []NewOrderItem `json:"items"`
	DeliveryAddress string         `json:"delivery_address"`
}

// StatusUpdate is the request payload for an order status change.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Created is returned by creation endpoints and carries the new identifier.
type Created struct {
	ID string `json:"id"`
}

// Restaurant represents a restaurant in search results.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	TotalOrders int     `json:"total_orders"`
}

// OrderItem represents one priced line of an order.
type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Order represents an order, including its lifecycle state and, when
// assigned, the delivering agent and estimate.
type Order struct {
	ID                string      `json:"id"`
	CustomerID        string      `json:"customer_id"`
	RestaurantID      string      `json:"restaurant_id"`
	Items             []OrderItem `json:"items"`
	TotalPrice        float64     `json:"total_price"`
	Status            string      `json:"status"`
	OrderTime         time.Time   `json:"order_time"`
	DeliveryAddress   string      `json:"delivery_address"`
	AgentID           *string     `json:"agent_id,omitempty"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
}

// Report is the operational summary payload.
type Report struct {
	TotalOrders          int            `json:"total_orders"`
	TotalCustomers       int            `json:"total_customers"`
	TotalRestaurants     int            `json:"total_restaurants"`
	TotalDeliveryAgents  int            `json:"total_delivery_agents"`
	OrderStatusBreakdown map[string]int `json:"order_status_breakdown"`
	TotalRevenue         float64        `json:"total_revenue"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

// Health is the liveness payload. Dirty reports whether in-memory state has
// changes that could not be written to the data file.
type Health struct {
	Status string `json:"status"`
	Dirty  bool   `json:"dirty"`
}
