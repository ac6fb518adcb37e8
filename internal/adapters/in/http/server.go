// Package http exposes the application's use cases over a REST API.
// Handlers translate between JSON payloads and commands or queries; all
// business rules stay behind the application layer.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// StateHealth reports the synchronization state between memory and disk.
type StateHealth interface {
	Dirty() bool
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addRestaurantHandler     commands.AddRestaurantCommandHandler
	addMenuItemHandler       commands.AddMenuItemCommandHandler
	registerCustomerHandler  commands.RegisterCustomerCommandHandler
	addAgentHandler          commands.AddAgentCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	assignAgentHandler       commands.AssignAgentCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	searchRestaurantsHandler queries.SearchRestaurantsQueryHandler
	generateReportHandler    queries.GenerateReportQueryHandler

	health StateHealth
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addRestaurantHandler commands.AddRestaurantCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	addAgentHandler commands.AddAgentCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	searchRestaurantsHandler queries.SearchRestaurantsQueryHandler,
	generateReportHandler queries.GenerateReportQueryHandler,
	health StateHealth,
) *Server {
	return &Server{
		addRestaurantHandler:     addRestaurantHandler,
		addMenuItemHandler:       addMenuItemHandler,
		registerCustomerHandler:  registerCustomerHandler,
		addAgentHandler:          addAgentHandler,
		placeOrderHandler:        placeOrderHandler,
		assignAgentHandler:       assignAgentHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		searchRestaurantsHandler: searchRestaurantsHandler,
		generateReportHandler:    generateReportHandler,
		health:                   health,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants", s.SearchRestaurants)
	api.POST("/restaurants/:id/menu-items", s.CreateMenuItem)

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)

	api.POST("/agents", s.CreateAgent)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/assign", s.AssignAgent)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/report", s.GetReport)

	e.GET("/health", s.GetHealth)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.MenuItemInput, len(body.Menu))
	for i, item := range body.Menu {
		items[i] = commands.MenuItemInput{
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Category:    item.Category,
		}
	}

	cmd, err := commands.NewAddRestaurantCommand(body.Name, body.Cuisine, body.Location, items)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	id, err := s.addRestaurantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// SearchRestaurants handles GET /api/v1/restaurants.
// The cuisine and location query parameters are independent filters; a
// restaurant matching either is returned, and with no filters set every
// restaurant is returned.
func (s *Server) SearchRestaurants(ctx echo.Context) error {
	query := queries.NewSearchRestaurantsQuery(
		ctx.QueryParam("cuisine"),
		ctx.QueryParam("location"))

	results, err := s.searchRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Restaurant, len(results))
	for i, r := range results {
		response[i] = Restaurant{
			ID:          r.ID,
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Location:    r.Location,
			Rating:      r.Rating,
			TotalOrders: r.TotalOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/restaurants/:id/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	var body NewMenuItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddMenuItemCommand(
		restaurantID, body.Name, body.Price, body.Description, body.Category)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	id, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// CreateCustomer handles POST /api/v1/customers.
// Registration accepts any contact data, including none.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewRegisterCustomerCommand(body.Name, body.Email, body.Phone, body.Address)

	id, err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAgent handles POST /api/v1/agents.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var body NewAgent
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddAgentCommand(body.Name, body.Phone, body.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid agent data: "+err.Error())
	}

	id, err := s.addAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.IDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer identifier")
	}

	restaurantID, err := kernel.IDFromString(body.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant identifier")
	}

	items := make([]commands.OrderItem, 0, len(body.Items))
	for _, requested := range body.Items {
		itemID, idErr := kernel.IDFromString(requested.ItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu item identifier: "+requested.ItemID)
		}

		item, itemErr := commands.NewOrderItem(itemID, requested.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, restaurantID, items, body.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	id, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// AssignAgent handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignAgent(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	cmd, err := commands.NewAssignAgentCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	if err = s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	var body StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	next, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+body.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReport handles GET /api/v1/report.
func (s *Server) GetReport(ctx echo.Context) error {
	report, err := s.generateReportHandler.Handle(ctx.Request().Context(), queries.NewGenerateReportQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Report{
		TotalOrders:          report.TotalOrders,
		TotalCustomers:       report.TotalCustomers,
		TotalRestaurants:     report.TotalRestaurants,
		TotalDeliveryAgents:  report.TotalDeliveryAgents,
		OrderStatusBreakdown: report.OrdersByStatus,
		TotalRevenue:         report.TotalRevenue,
		GeneratedAt:          report.GeneratedAt,
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{
		Status: "ok",
		Dirty:  s.health.Dirty(),
	})
}

func toOrder(o queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}

	return Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		RestaurantID:      o.RestaurantID,
		Items:             items,
		TotalPrice:        o.TotalPrice,
		Status:            o.Status,
		OrderTime:         o.OrderTime,
		DeliveryAddress:   o.DeliveryAddress,
		AgentID:           o.AgentID,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrNoOrderFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrNoAvailableAgentsFound):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrNoValidMenuItems),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
