package queries

import (
	"context"
	"strings"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
)

// SearchRestaurantsQueryHandler scans registered restaurants against the
// search filters.
//
// Example:
//
//	handler := NewSearchRestaurantsQueryHandler(restaurantRepo)
//	query := NewSearchRestaurantsQuery("italian", "")
//
//	results, err := handler.Handle(ctx, query)
//	for _, r := range results {
//	    fmt.Printf("%s (%s) in %s\n", r.Name, r.Cuisine, r.Location)
//	}
type SearchRestaurantsQueryHandler struct {
	restaurantRepo ports.RestaurantRepository
}

// NewSearchRestaurantsQueryHandler creates a handler for restaurant search queries.
func NewSearchRestaurantsQueryHandler(restaurantRepo ports.RestaurantRepository) SearchRestaurantsQueryHandler {
	return SearchRestaurantsQueryHandler{restaurantRepo: restaurantRepo}
}

// Handle executes the restaurant search.
// A restaurant is returned when it matches the cuisine filter or the location
// filter; with neither filter set every restaurant is returned.
func (h SearchRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SearchRestaurantsQuery,
) ([]SearchRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants, err := h.restaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]SearchRestaurantsQueryResponse, 0)
	for _, r := range restaurants {
		if !matches(r, query.Cuisine(), query.Location()) {
			continue
		}

		results = append(results, SearchRestaurantsQueryResponse{
			ID:          r.ID().String(),
			Name:        r.Name(),
			Cuisine:     r.Cuisine(),
			Location:    r.Location(),
			Rating:      r.Rating(),
			TotalOrders: r.TotalOrders(),
		})
	}

	return results, nil
}

func matches(r *restaurant.Restaurant, cuisine, location string) bool {
	if cuisine == "" && location == "" {
		return true
	}
	if cuisine != "" && strings.Contains(strings.ToLower(r.Cuisine()), strings.ToLower(cuisine)) {
		return true
	}
	if location != "" && strings.Contains(strings.ToLower(r.Location()), strings.ToLower(location)) {
		return true
	}
	return false
}
