package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrSearchRestaurantsQueryIsNotConstructed = errors.New(
	"SearchRestaurantsQuery must be created via NewSearchRestaurantsQuery constructor",
)

// SearchRestaurantsQuery finds restaurants by cuisine and/or location.
// Both filters are case-insensitive substring matches and they combine
// inclusively: a restaurant matching either filter is returned. With no
// filters set, every restaurant matches.
//
// Example:
//
//	query := NewSearchRestaurantsQuery("mexican", "downtown")
//	handler := NewSearchRestaurantsQueryHandler(restaurantRepo)
//
//	// Returns Mexican restaurants anywhere plus any restaurant in Downtown
//	results, err := handler.Handle(ctx, query)
type SearchRestaurantsQuery struct {
	cuisine  string
	location string

	guard guard.ConstructorGuard
}

// NewSearchRestaurantsQuery creates a restaurant search query.
// Empty strings mean the corresponding filter is not applied.
func NewSearchRestaurantsQuery(cuisine, location string) SearchRestaurantsQuery {
	return SearchRestaurantsQuery{
		cuisine:  cuisine,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchRestaurantsQueryIsNotConstructed if validation fails.
func (q SearchRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRestaurantsQueryIsNotConstructed)
}

// Cuisine returns the cuisine filter. Empty means not filtered by cuisine.
func (q SearchRestaurantsQuery) Cuisine() string {
	return q.cuisine
}

// Location returns the location filter. Empty means not filtered by location.
func (q SearchRestaurantsQuery) Location() string {
	return q.location
}

// SearchRestaurantsQueryResponse represents a restaurant in the search read model.
type SearchRestaurantsQueryResponse struct {
	ID          string
	Name        string
	Cuisine     string
	Location    string
	Rating      float64
	TotalOrders int
}
