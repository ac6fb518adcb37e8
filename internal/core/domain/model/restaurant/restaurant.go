package restaurant

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the aggregate root for the catalog. It owns the menu and the
// counters mutated by order placement.
//
// Restaurant follows these invariants:
//   - Must have a valid identifier and a non-empty name
//   - Rating starts at 0.0 and is never updated by any catalog operation
//   - Menu item identifiers are allocated from the menu size at add time
//   - The order counter only ever increments
//
// Duplicate names are intentionally allowed; two restaurants with the same
// name are distinct entities with distinct identifiers.
type Restaurant struct {
	id          kernel.ID
	name        string
	cuisine     string
	location    string
	menu        map[kernel.ID]*MenuItem
	rating      float64
	totalOrders int

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with an empty menu, rating 0.0, and a
// zero order counter. Cuisine and location are free-form text used by search.
func NewRestaurant(id kernel.ID, name, cuisine, location string) (*Restaurant, error) {
	r := &Restaurant{
		menu:  make(map[kernel.ID]*MenuItem),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.cuisine = cuisine
	r.location = location
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant aggregate from persistent storage,
// including its menu, rating, and order counter.
func RestoreRestaurant(
	id kernel.ID,
	name, cuisine, location string,
	menu map[kernel.ID]*MenuItem,
	rating float64,
	totalOrders int,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, cuisine, location)
	if err != nil {
		return nil, err
	}

	for itemID, item := range menu {
		if err := itemID.Validate(); err != nil {
			return nil, err
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		r.menu[itemID] = item
	}

	r.rating = rating
	r.totalOrders = totalOrders
	return r, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Cuisine returns the free-form cuisine description.
func (r *Restaurant) Cuisine() string {
	return r.cuisine
}

// Location returns the free-form location description.
func (r *Restaurant) Location() string {
	return r.location
}

// Rating returns the restaurant's rating. Always 0.0 until a rating
// mechanism exists; kept for the persisted document shape.
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// TotalOrders returns the number of orders placed against this restaurant.
func (r *Restaurant) TotalOrders() int {
	return r.totalOrders
}

// Menu returns a copy of the menu keyed by item identifier.
func (r *Restaurant) Menu() map[kernel.ID]*MenuItem {
	out := make(map[kernel.ID]*MenuItem, len(r.menu))
	for id, item := range r.menu {
		out[id] = item
	}
	return out
}

// MenuItem looks up a single menu item by its identifier.
// Returns an object-not-found error when the item is not on the menu.
func (r *Restaurant) MenuItem(itemID kernel.ID) (*MenuItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	item, ok := r.menu[itemID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item_id", itemID.String())
	}
	return item, nil
}

// AddMenuItem appends a menu item and returns the identifier allocated for it.
// The identifier is sequential and local to this restaurant's menu size at the
// time of the call.
func (r *Restaurant) AddMenuItem(item *MenuItem) (kernel.ID, error) {
	if err := item.Validate(); err != nil {
		return kernel.ID{}, err
	}

	itemID, err := kernel.NewID(kernel.MenuItemPrefix, len(r.menu)+1)
	if err != nil {
		return kernel.ID{}, err
	}

	r.menu[itemID] = item
	return itemID, nil
}

// RecordOrder increments the restaurant's order counter.
// Called once for every order successfully placed against this restaurant.
func (r *Restaurant) RecordOrder() {
	r.totalOrders++
}

func (r *Restaurant) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
