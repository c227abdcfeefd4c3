package memory

import (
	"context"
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/model/revenue"
	"minishop/internal/core/domain/model/tariff"
	"minishop/internal/core/ports"
)

// ErrNoActiveTransaction is returned when committing or rolling back a unit
// of work that was never begun.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates in-memory unit of work instances sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes against the shared store and applies them on
// commit. Begin acquires the store mutex, so at most one transaction runs
// at a time.
type UnitOfWork struct {
	store *Store
	begun bool

	pendingProducts map[kernel.UUID]*product.Product
	pendingOrders   map[kernel.UUID]*order.Order
	pendingEntries  []revenue.Entry
	pendingFeeTable *tariff.FeeTable
}

// Begin locks the store for this transaction.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.begun {
		return nil
	}

	uow.store.mu.Lock()
	uow.begun = true
	uow.pendingProducts = make(map[kernel.UUID]*product.Product)
	uow.pendingOrders = make(map[kernel.UUID]*order.Order)
	uow.pendingEntries = nil
	uow.pendingFeeTable = nil
	return nil
}

// Commit applies all staged changes and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.begun {
		return ErrNoActiveTransaction
	}

	for id, p := range uow.pendingProducts {
		uow.store.products[id] = p
	}
	for id, o := range uow.pendingOrders {
		uow.store.orders[id] = o
		uow.store.byCode[o.Code().String()] = id
	}
	uow.store.entries = append(uow.store.entries, uow.pendingEntries...)
	if uow.pendingFeeTable != nil {
		uow.store.feeTable = uow.pendingFeeTable
	}

	uow.finish()
	return nil
}

// Rollback discards all staged changes and releases the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.begun {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.begun = false
	uow.pendingProducts = nil
	uow.pendingOrders = nil
	uow.pendingEntries = nil
	uow.pendingFeeTable = nil
	uow.store.mu.Unlock()
}

// ProductRepository returns a product repository bound to this transaction.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow}
}

// OrderRepository returns an order repository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// RevenueRepository returns a ledger repository bound to this transaction.
func (uow *UnitOfWork) RevenueRepository() ports.RevenueRepository {
	return &revenueRepository{uow: uow}
}

// TariffRepository returns a fee table repository bound to this transaction.
func (uow *UnitOfWork) TariffRepository() ports.TariffRepository {
	return &tariffRepository{uow: uow}
}
