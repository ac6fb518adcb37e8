package jsonfile

import (
	"context"
	"errors"
	"sort"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

// ErrAggregateAlreadyExists is returned when adding an aggregate whose
// identifier is already taken.
var ErrAggregateAlreadyExists = errors.New("aggregate already exists")

// Repositories hand out copies of the stored aggregates, never the stored
// pointers. Mutations become visible only through Update, and only survive a
// committed unit of work.

// RestaurantRepository implements ports.RestaurantRepository over the store.
// The locking flag distinguishes standalone reads from transaction-bound use
// where the unit of work already holds the store lock.
type RestaurantRepository struct {
	store   *Store
	locking bool
}

func (r *RestaurantRepository) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *RestaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	defer r.lock()()

	if _, ok := r.store.restaurants[aggregate.ID()]; ok {
		return ErrAggregateAlreadyExists
	}

	r.store.restaurants[aggregate.ID()] = aggregate
	return nil
}

func (r *RestaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	defer r.lock()()

	if _, ok := r.store.restaurants[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("restaurant_id", aggregate.ID())
	}

	r.store.restaurants[aggregate.ID()] = aggregate
	return nil
}

func (r *RestaurantRepository) Get(_ context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	defer r.lock()()

	aggregate, ok := r.store.restaurants[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant_id", id)
	}

	return restaurantToDomain(id.String(), restaurantFromDomain(aggregate))
}

func (r *RestaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	defer r.lock()()

	out := make([]*restaurant.Restaurant, 0, len(r.store.restaurants))
	for id, aggregate := range r.store.restaurants {
		copied, err := restaurantToDomain(id.String(), restaurantFromDomain(aggregate))
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Sequence() < out[j].ID().Sequence()
	})
	return out, nil
}

func (r *RestaurantRepository) NextID(_ context.Context) (kernel.ID, error) {
	defer r.lock()()
	return kernel.NewID(kernel.RestaurantPrefix, len(r.store.restaurants)+1)
}

// CustomerRepository implements ports.CustomerRepository over the store.
type CustomerRepository struct {
	store   *Store
	locking bool
}

func (r *CustomerRepository) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *CustomerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	defer r.lock()()

	if _, ok := r.store.customers[aggregate.ID()]; ok {
		return ErrAggregateAlreadyExists
	}

	r.store.customers[aggregate.ID()] = aggregate
	return nil
}

func (r *CustomerRepository) Update(_ context.Context, aggregate *customer.Customer) error {
	defer r.lock()()

	if _, ok := r.store.customers[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("customer_id", aggregate.ID())
	}

	r.store.customers[aggregate.ID()] = aggregate
	return nil
}

func (r *CustomerRepository) Get(_ context.Context, id kernel.ID) (*customer.Customer, error) {
	defer r.lock()()

	aggregate, ok := r.store.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer_id", id)
	}

	return customerToDomain(id.String(), customerFromDomain(aggregate))
}

func (r *CustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	defer r.lock()()

	out := make([]*customer.Customer, 0, len(r.store.customers))
	for id, aggregate := range r.store.customers {
		copied, err := customerToDomain(id.String(), customerFromDomain(aggregate))
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Sequence() < out[j].ID().Sequence()
	})
	return out, nil
}

func (r *CustomerRepository) NextID(_ context.Context) (kernel.ID, error) {
	defer r.lock()()
	return kernel.NewID(kernel.CustomerPrefix, len(r.store.customers)+1)
}

// AgentRepository implements ports.AgentRepository over the store.
type AgentRepository struct {
	store   *Store
	locking bool
}

func (r *AgentRepository) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *AgentRepository) Add(_ context.Context, aggregate *agent.DeliveryAgent) error {
	defer r.lock()()

	if _, ok := r.store.agents[aggregate.ID()]; ok {
		return ErrAggregateAlreadyExists
	}

	r.store.agents[aggregate.ID()] = aggregate
	return nil
}

func (r *AgentRepository) Update(_ context.Context, aggregate *agent.DeliveryAgent) error {
	defer r.lock()()

	if _, ok := r.store.agents[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("agent_id", aggregate.ID())
	}

	r.store.agents[aggregate.ID()] = aggregate
	return nil
}

func (r *AgentRepository) Get(_ context.Context, id kernel.ID) (*agent.DeliveryAgent, error) {
	defer r.lock()()

	aggregate, ok := r.store.agents[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("agent_id", id)
	}

	return agentToDomain(id.String(), agentFromDomain(aggregate))
}

func (r *AgentRepository) GetAll(_ context.Context) ([]*agent.DeliveryAgent, error) {
	defer r.lock()()
	return r.agents(func(*agent.DeliveryAgent) bool { return true })
}

func (r *AgentRepository) GetAllAvailable(_ context.Context) ([]*agent.DeliveryAgent, error) {
	defer r.lock()()
	return r.agents(func(a *agent.DeliveryAgent) bool { return a.IsAvailable() })
}

// agents copies the agents matching the filter, ordered by identifier.
// Callers are responsible for locking.
func (r *AgentRepository) agents(keep func(*agent.DeliveryAgent) bool) ([]*agent.DeliveryAgent, error) {
	out := make([]*agent.DeliveryAgent, 0, len(r.store.agents))
	for id, aggregate := range r.store.agents {
		if !keep(aggregate) {
			continue
		}

		copied, err := agentToDomain(id.String(), agentFromDomain(aggregate))
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Sequence() < out[j].ID().Sequence()
	})
	return out, nil
}

func (r *AgentRepository) NextID(_ context.Context) (kernel.ID, error) {
	defer r.lock()()
	return kernel.NewID(kernel.AgentPrefix, len(r.store.agents)+1)
}

// OrderRepository implements ports.OrderRepository over the store.
type OrderRepository struct {
	store   *Store
	locking bool
}

func (r *OrderRepository) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	defer r.lock()()

	if _, ok := r.store.orders[aggregate.ID()]; ok {
		return ErrAggregateAlreadyExists
	}

	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	defer r.lock()()

	if _, ok := r.store.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order_id", aggregate.ID())
	}

	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	defer r.lock()()

	aggregate, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order_id", id)
	}

	return orderToDomain(id.String(), orderFromDomain(aggregate))
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	defer r.lock()()
	return r.orders(func(*order.Order) bool { return true })
}

func (r *OrderRepository) GetFirstInPlacedStatus(_ context.Context) (*order.Order, error) {
	defer r.lock()()

	placed, err := r.orders(func(o *order.Order) bool { return o.Status() == order.StatusPlaced })
	if err != nil {
		return nil, err
	}
	if len(placed) == 0 {
		return nil, errs.NewObjectNotFoundError("status", order.StatusPlaced)
	}

	return placed[0], nil
}

func (r *OrderRepository) GetAllByCustomer(_ context.Context, customerID kernel.ID) ([]*order.Order, error) {
	defer r.lock()()
	return r.orders(func(o *order.Order) bool { return o.CustomerID().IsEqual(customerID) })
}

// orders copies the orders matching the filter, oldest first.
// Callers are responsible for locking.
func (r *OrderRepository) orders(keep func(*order.Order) bool) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(r.store.orders))
	for id, aggregate := range r.store.orders {
		if !keep(aggregate) {
			continue
		}

		copied, err := orderToDomain(id.String(), orderFromDomain(aggregate))
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Sequence() < out[j].ID().Sequence()
	})
	return out, nil
}

func (r *OrderRepository) NextID(_ context.Context) (kernel.ID, error) {
	defer r.lock()()
	return kernel.NewID(kernel.OrderPrefix, len(r.store.orders)+1)
}
