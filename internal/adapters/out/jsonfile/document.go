package jsonfile

import (
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// Document is the on-disk representation of the whole system state.
// Collection maps are keyed by the aggregate identifiers.
type Document struct {
	Restaurants    map[string]RestaurantDTO `json:"restaurants"`
	Customers      map[string]CustomerDTO   `json:"customers"`
	DeliveryAgents map[string]AgentDTO      `json:"delivery_agents"`
	Orders         map[string]OrderDTO      `json:"orders"`
}

// NewDocument creates an empty document with all collections initialized.
func NewDocument() *Document {
	return &Document{
		Restaurants:    make(map[string]RestaurantDTO),
		Customers:      make(map[string]CustomerDTO),
		DeliveryAgents: make(map[string]AgentDTO),
		Orders:         make(map[string]OrderDTO),
	}
}

// MenuItemDTO represents a menu item within a restaurant's menu.
type MenuItemDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// RestaurantDTO represents a restaurant with its menu.
type RestaurantDTO struct {
	Name        string                 `json:"name"`
	Cuisine     string                 `json:"cuisine"`
	Location    string                 `json:"location"`
	Menu        map[string]MenuItemDTO `json:"menu"`
	Rating      float64                `json:"rating"`
	TotalOrders int                    `json:"total_orders"`
}

// CustomerDTO represents a customer and the identifiers of their past orders.
type CustomerDTO struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	OrderHistory []string `json:"order_history"`
}

// AgentDTO represents a delivery agent and their current assignment.
type AgentDTO struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	VehicleType     string  `json:"vehicle_type"`
	Status          string  `json:"status"`
	CurrentOrder    *string `json:"current_order"`
	TotalDeliveries int     `json:"total_deliveries"`
}

// OrderLineDTO represents one priced line of an order.
type OrderLineDTO struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderDTO represents an order with its lifecycle state.
type OrderDTO struct {
	CustomerID        string         `json:"customer_id"`
	RestaurantID      string         `json:"restaurant_id"`
	Items             []OrderLineDTO `json:"items"`
	TotalPrice        float64        `json:"total_price"`
	Status            string         `json:"status"`
	OrderTime         time.Time      `json:"order_time"`
	DeliveryAddress   string         `json:"delivery_address"`
	DeliveryAgent     *string        `json:"delivery_agent"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery"`
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	menu := make(map[string]MenuItemDTO, len(aggregate.Menu()))
	for itemID, item := range aggregate.Menu() {
		menu[itemID.String()] = MenuItemDTO{
			Name:        item.Name(),
			Price:       item.Price(),
			Description: item.Description(),
			Category:    item.Category(),
			Available:   item.IsAvailable(),
		}
	}

	return RestaurantDTO{
		Name:        aggregate.Name(),
		Cuisine:     aggregate.Cuisine(),
		Location:    aggregate.Location(),
		Menu:        menu,
		Rating:      aggregate.Rating(),
		TotalOrders: aggregate.TotalOrders(),
	}
}

func restaurantToDomain(id string, dto RestaurantDTO) (*restaurant.Restaurant, error) {
	restaurantID, err := kernel.IDFromString(id)
	if err != nil {
		return nil, err
	}

	menu := make(map[kernel.ID]*restaurant.MenuItem, len(dto.Menu))
	for rawItemID, itemDTO := range dto.Menu {
		itemID, idErr := kernel.IDFromString(rawItemID)
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := restaurant.RestoreMenuItem(
			itemDTO.Name, itemDTO.Price, itemDTO.Description, itemDTO.Category, itemDTO.Available)
		if itemErr != nil {
			return nil, itemErr
		}

		menu[itemID] = item
	}

	return restaurant.RestoreRestaurant(
		restaurantID, dto.Name, dto.Cuisine, dto.Location, menu, dto.Rating, dto.TotalOrders)
}

func customerFromDomain(aggregate *customer.Customer) CustomerDTO {
	history := make([]string, 0, len(aggregate.OrderHistory()))
	for _, orderID := range aggregate.OrderHistory() {
		history = append(history, orderID.String())
	}

	return CustomerDTO{
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		OrderHistory: history,
	}
}

func customerToDomain(id string, dto CustomerDTO) (*customer.Customer, error) {
	customerID, err := kernel.IDFromString(id)
	if err != nil {
		return nil, err
	}

	history := make([]kernel.ID, 0, len(dto.OrderHistory))
	for _, rawOrderID := range dto.OrderHistory {
		orderID, idErr := kernel.IDFromString(rawOrderID)
		if idErr != nil {
			return nil, idErr
		}
		history = append(history, orderID)
	}

	return customer.RestoreCustomer(customerID, dto.Name, dto.Email, dto.Phone, dto.Address, history)
}

func agentFromDomain(aggregate *agent.DeliveryAgent) AgentDTO {
	var currentOrder *string
	if orderID := aggregate.CurrentOrder(); orderID != nil {
		raw := orderID.String()
		currentOrder = &raw
	}

	return AgentDTO{
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		VehicleType:     aggregate.VehicleType(),
		Status:          aggregate.Status().String(),
		CurrentOrder:    currentOrder,
		TotalDeliveries: aggregate.TotalDeliveries(),
	}
}

func agentToDomain(id string, dto AgentDTO) (*agent.DeliveryAgent, error) {
	agentID, err := kernel.IDFromString(id)
	if err != nil {
		return nil, err
	}

	status, err := agent.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentOrder *kernel.ID
	if dto.CurrentOrder != nil {
		orderID, idErr := kernel.IDFromString(*dto.CurrentOrder)
		if idErr != nil {
			return nil, idErr
		}
		currentOrder = &orderID
	}

	return agent.RestoreDeliveryAgent(
		agentID, dto.Name, dto.Phone, dto.VehicleType, status, currentOrder, dto.TotalDeliveries)
}

func orderFromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderLineDTO, 0, len(aggregate.Items()))
	for _, li := range aggregate.Items() {
		items = append(items, OrderLineDTO{
			ItemID:   li.ItemID().String(),
			Name:     li.Name(),
			Price:    li.Price(),
			Quantity: li.Quantity(),
		})
	}

	var deliveryAgent *string
	if agentID := aggregate.AgentID(); agentID != nil {
		raw := agentID.String()
		deliveryAgent = &raw
	}

	return OrderDTO{
		CustomerID:        aggregate.CustomerID().String(),
		RestaurantID:      aggregate.RestaurantID().String(),
		Items:             items,
		TotalPrice:        aggregate.TotalPrice(),
		Status:            aggregate.Status().String(),
		OrderTime:         aggregate.OrderTime(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		DeliveryAgent:     deliveryAgent,
		EstimatedDelivery: aggregate.EstimatedDelivery(),
	}
}

func orderToDomain(id string, dto OrderDTO) (*order.Order, error) {
	orderID, err := kernel.IDFromString(id)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.IDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.IDFromString(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, lineDTO := range dto.Items {
		itemID, idErr := kernel.IDFromString(lineDTO.ItemID)
		if idErr != nil {
			return nil, idErr
		}

		li, liErr := order.NewLineItem(itemID, lineDTO.Name, lineDTO.Price, lineDTO.Quantity)
		if liErr != nil {
			return nil, liErr
		}

		items = append(items, li)
	}

	var agentID *kernel.ID
	if dto.DeliveryAgent != nil {
		id, idErr := kernel.IDFromString(*dto.DeliveryAgent)
		if idErr != nil {
			return nil, idErr
		}
		agentID = &id
	}

	return order.RestoreOrder(orderID, customerID, restaurantID, items, dto.TotalPrice,
		status, dto.OrderTime, dto.DeliveryAddress, agentID, dto.EstimatedDelivery)
}
