package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// GenerateReportQueryHandler aggregates the whole system state into the
// operational summary.
type GenerateReportQueryHandler struct {
	restaurantRepo ports.RestaurantRepository
	customerRepo   ports.CustomerRepository
	agentRepo      ports.AgentRepository
	orderRepo      ports.OrderRepository
}

// NewGenerateReportQueryHandler creates a handler for report generation queries.
func NewGenerateReportQueryHandler(
	restaurantRepo ports.RestaurantRepository,
	customerRepo ports.CustomerRepository,
	agentRepo ports.AgentRepository,
	orderRepo ports.OrderRepository,
) GenerateReportQueryHandler {
	return GenerateReportQueryHandler{
		restaurantRepo: restaurantRepo,
		customerRepo:   customerRepo,
		agentRepo:      agentRepo,
		orderRepo:      orderRepo,
	}
}

// Handle executes the report query.
// Revenue sums the totals of delivered orders only; in-flight and cancelled
// orders contribute to counts but not to revenue.
func (h GenerateReportQueryHandler) Handle(
	ctx context.Context,
	query GenerateReportQuery,
) (GenerateReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GenerateReportQueryResponse{}, err
	}

	restaurants, err := h.restaurantRepo.GetAll(ctx)
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}

	customers, err := h.customerRepo.GetAll(ctx)
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}

	agents, err := h.agentRepo.GetAll(ctx)
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}

	report := GenerateReportQueryResponse{
		TotalOrders:         len(orders),
		TotalCustomers:      len(customers),
		TotalRestaurants:    len(restaurants),
		TotalDeliveryAgents: len(agents),
		OrdersByStatus:      make(map[string]int),
		GeneratedAt:         time.Now(),
	}

	revenue := 0.0
	for _, aggregate := range orders {
		report.OrdersByStatus[aggregate.Status().String()]++
		if aggregate.Status() == order.StatusDelivered {
			revenue += aggregate.TotalPrice()
		}
	}

	report.TotalRevenue = kernel.RoundToCents(revenue)
	return report, nil
}
