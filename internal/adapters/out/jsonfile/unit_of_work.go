// Package jsonfile provides a flat-file implementation of the Unit of Work
// pattern. All aggregates live in memory inside a Store; a unit of work takes
// the store lock for the duration of the business transaction, snapshots the
// state on Begin, and either persists the whole state to disk on Commit or
// restores the snapshot on Rollback.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Whole-state snapshot and restore for rollback
//   - Atomic file replacement on save (temp file plus rename)
//   - Repository factory pattern sharing the held store lock
//
// Basic Transaction Management:
//
//	factory := NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - The store lock serializes transactions, so keep them short
//   - Each goroutine must use its own UnitOfWork instance
//   - Repositories obtained outside a unit of work lock per call
package jsonfile

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// UnitOfWorkFactory creates UnitOfWork instances over a shared store.
// Each business operation gets a fresh unit of work instance.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory producing unit of work instances
// bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. The instance owns no resources until Begin is called.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork coordinates changes to the in-memory state and their
// persistence to the data file. Begin acquires the store lock and records a
// snapshot; repository operations then mutate the live state directly.
// Commit writes the state to disk, Rollback restores the snapshot. Exactly
// one of Commit or Rollback must be called after a successful Begin, and a
// Rollback after Commit is a no-op, so the usual pattern is:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	// repository operations
//
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store    *Store
	snapshot *Document
	active   bool
}

// Begin acquires the store lock and snapshots the current state.
// Multiple calls to Begin on the same instance are safe and will not
// attempt to re-acquire the lock.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.snapshot = uow.store.snapshot()
	uow.active = true
	return nil
}

// Commit persists the current state to the data file and releases the store
// lock. The in-memory state is kept even when the save fails: the store is
// marked dirty and the commit still succeeds, so a later successful save can
// catch the file up.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.store.persist()
	uow.finish()
	return nil
}

// Rollback restores the state captured at Begin and releases the store lock.
// Calling Rollback on an inactive unit of work is a no-op.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	if err := uow.store.restore(uow.snapshot); err != nil {
		uow.finish()
		return err
	}

	uow.finish()
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.snapshot = nil
	uow.active = false
	uow.store.mu.Unlock()
}

// RestaurantRepository returns a restaurant repository operating under the
// transaction's store lock.
func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{store: uow.store}
}

// CustomerRepository returns a customer repository operating under the
// transaction's store lock.
func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{store: uow.store}
}

// AgentRepository returns a delivery agent repository operating under the
// transaction's store lock.
func (uow *UnitOfWork) AgentRepository() ports.AgentRepository {
	return &AgentRepository{store: uow.store}
}

// OrderRepository returns an order repository operating under the
// transaction's store lock.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store}
}
