package jsonfile

import (
	"sync"

	"github.com/rs/zerolog"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/customer"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
)

// Store holds the complete system state in memory and synchronizes it with
// the persistence layer. All mutations flow through unit of work instances
// created by UnitOfWorkFactory; reads outside a transaction go through
// the locking repositories returned by the repository accessors.
//
// When a save fails after a commit, the in-memory state stays authoritative
// and the store is marked dirty until a later save succeeds.
type Store struct {
	mu sync.Mutex

	restaurants map[kernel.ID]*restaurant.Restaurant
	customers   map[kernel.ID]*customer.Customer
	agents      map[kernel.ID]*agent.DeliveryAgent
	orders      map[kernel.ID]*order.Order

	persistence Persistence
	dirty       bool
	logger      zerolog.Logger
}

// NewStore creates a store and loads the current state from persistence.
// A missing backing file yields an empty state.
func NewStore(persistence Persistence, logger zerolog.Logger) (*Store, error) {
	doc, err := persistence.Load()
	if err != nil {
		return nil, err
	}

	s := &Store{
		persistence: persistence,
		logger:      logger,
	}

	if err = s.restore(doc); err != nil {
		return nil, err
	}

	logger.Info().
		Int("restaurants", len(s.restaurants)).
		Int("customers", len(s.customers)).
		Int("agents", len(s.agents)).
		Int("orders", len(s.orders)).
		Msg("state loaded")

	return s, nil
}

// Dirty reports whether the in-memory state has changes that could not be
// written to persistence.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Flush retries writing the state when a previous save failed.
// A no-op while the state and the file are in sync.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return
	}
	s.persist()
}

// RestaurantRepository returns a repository for reads outside a transaction.
// Each call locks the store for its own duration.
func (s *Store) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{store: s, locking: true}
}

// CustomerRepository returns a repository for reads outside a transaction.
func (s *Store) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{store: s, locking: true}
}

// AgentRepository returns a repository for reads outside a transaction.
func (s *Store) AgentRepository() ports.AgentRepository {
	return &AgentRepository{store: s, locking: true}
}

// OrderRepository returns a repository for reads outside a transaction.
func (s *Store) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: s, locking: true}
}

// snapshot converts the in-memory state to its document form.
// Callers must hold the store lock.
func (s *Store) snapshot() *Document {
	doc := NewDocument()
	for id, aggregate := range s.restaurants {
		doc.Restaurants[id.String()] = restaurantFromDomain(aggregate)
	}
	for id, aggregate := range s.customers {
		doc.Customers[id.String()] = customerFromDomain(aggregate)
	}
	for id, aggregate := range s.agents {
		doc.DeliveryAgents[id.String()] = agentFromDomain(aggregate)
	}
	for id, aggregate := range s.orders {
		doc.Orders[id.String()] = orderFromDomain(aggregate)
	}
	return doc
}

// restore rebuilds the in-memory state from a document, replacing whatever
// was there. Callers must hold the store lock, except during construction.
func (s *Store) restore(doc *Document) error {
	restaurants := make(map[kernel.ID]*restaurant.Restaurant, len(doc.Restaurants))
	for rawID, dto := range doc.Restaurants {
		aggregate, err := restaurantToDomain(rawID, dto)
		if err != nil {
			return err
		}
		restaurants[aggregate.ID()] = aggregate
	}

	customers := make(map[kernel.ID]*customer.Customer, len(doc.Customers))
	for rawID, dto := range doc.Customers {
		aggregate, err := customerToDomain(rawID, dto)
		if err != nil {
			return err
		}
		customers[aggregate.ID()] = aggregate
	}

	agents := make(map[kernel.ID]*agent.DeliveryAgent, len(doc.DeliveryAgents))
	for rawID, dto := range doc.DeliveryAgents {
		aggregate, err := agentToDomain(rawID, dto)
		if err != nil {
			return err
		}
		agents[aggregate.ID()] = aggregate
	}

	orders := make(map[kernel.ID]*order.Order, len(doc.Orders))
	for rawID, dto := range doc.Orders {
		aggregate, err := orderToDomain(rawID, dto)
		if err != nil {
			return err
		}
		orders[aggregate.ID()] = aggregate
	}

	s.restaurants = restaurants
	s.customers = customers
	s.agents = agents
	s.orders = orders
	return nil
}

// persist writes the current state through the persistence layer.
// A failed save marks the store dirty and keeps the in-memory state
// authoritative; a later successful save clears the flag.
// Callers must hold the store lock.
func (s *Store) persist() {
	if err := s.persistence.Save(s.snapshot()); err != nil {
		s.dirty = true
		s.logger.Warn().Err(err).Msg("state save failed, in-memory state is ahead of disk")
		return
	}

	s.dirty = false
}
