package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/guard"
)

var ErrGenerateReportQueryIsNotConstructed = errors.New(
	"GenerateReportQuery must be created via NewGenerateReportQuery constructor",
)

// GenerateReportQuery produces an operational summary of the whole system:
// order volume, a per-status breakdown, and revenue from delivered orders.
//
// Example:
//
//	query := NewGenerateReportQuery()
//	handler := NewGenerateReportQueryHandler(orderRepo)
//
//	report, err := handler.Handle(ctx, query)
//	fmt.Printf("Revenue to date: %.2f\n", report.TotalRevenue)
type GenerateReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGenerateReportQuery creates a query to produce the operational report.
// This is a parameterless query over the full order book.
func NewGenerateReportQuery() GenerateReportQuery {
	return GenerateReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGenerateReportQueryIsNotConstructed if validation fails.
func (q GenerateReportQuery) Validate() error {
	return q.guard.Validate(ErrGenerateReportQueryIsNotConstructed)
}

// GenerateReportQueryResponse represents the operational summary read model.
// OrdersByStatus carries a count for every status that has at least one order.
// TotalRevenue counts delivered orders only, rounded to 2 decimals.
type GenerateReportQueryResponse struct {
	TotalOrders         int
	TotalCustomers      int
	TotalRestaurants    int
	TotalDeliveryAgents int
	OrdersByStatus      map[string]int
	TotalRevenue        float64
	GeneratedAt         time.Time
}
