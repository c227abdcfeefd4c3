// Package memory provides an in-memory implementation of the Unit of Work
// and its repositories. It backs local development and tests that do not
// want a database container.
//
// A transaction holds the store mutex from Begin until Commit or Rollback,
// so transactions are fully serialized. That is a much coarser lock than the
// row level locking of the postgres adapter, but it gives the same guarantee
// the domain needs: two carts competing for the same shelf never both win.
package memory

import (
	"sync"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/model/revenue"
	"minishop/internal/core/domain/model/tariff"
)

// Store is the shared in-memory state behind all unit of work instances.
type Store struct {
	mu sync.Mutex

	products map[kernel.UUID]*product.Product
	orders   map[kernel.UUID]*order.Order
	byCode   map[string]kernel.UUID
	entries  []revenue.Entry
	feeTable *tariff.FeeTable
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		products: make(map[kernel.UUID]*product.Product),
		orders:   make(map[kernel.UUID]*order.Order),
		byCode:   make(map[string]kernel.UUID),
	}
}

// cloneProduct returns an independent copy so aggregate mutations stay
// inside the transaction until commit.
func cloneProduct(p *product.Product) (*product.Product, error) {
	return product.RestoreProduct(p.ID(), p.Name(), p.Price(), p.Stock())
}

func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.Code(),
		o.Lines(),
		o.Distance(),
		o.Fee(),
		o.Total(),
		o.Status(),
		o.CreatedAt(),
		o.CompletedAt(),
	)
}
