package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/model/revenue"
	"minishop/internal/core/domain/model/tariff"
	"minishop/internal/pkg/errs"
)

// ErrAlreadyExists is returned when adding an aggregate whose identifier or
// code is already taken.
var ErrAlreadyExists = errors.New("already exists")

type productRepository struct {
	uow *UnitOfWork
}

func (r *productRepository) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.find(aggregate.ID()); ok {
		return ErrAlreadyExists
	}

	staged, err := cloneProduct(aggregate)
	if err != nil {
		return err
	}

	r.uow.pendingProducts[aggregate.ID()] = staged
	return nil
}

func (r *productRepository) Update(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.find(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	staged, err := cloneProduct(aggregate)
	if err != nil {
		return err
	}

	r.uow.pendingProducts[aggregate.ID()] = staged
	return nil
}

func (r *productRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, ok := r.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}

	return cloneProduct(p)
}

func (r *productRepository) GetByIDs(_ context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}

		p, ok := r.find(id)
		if !ok {
			continue
		}

		clone, err := cloneProduct(p)
		if err != nil {
			return nil, err
		}
		products = append(products, clone)
	}

	return products, nil
}

func (r *productRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	seen := make(map[kernel.UUID]*product.Product)
	for id, p := range r.uow.store.products {
		seen[id] = p
	}
	for id, p := range r.uow.pendingProducts {
		seen[id] = p
	}

	products := make([]*product.Product, 0, len(seen))
	for _, p := range seen {
		clone, err := cloneProduct(p)
		if err != nil {
			return nil, err
		}
		products = append(products, clone)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name() < products[j].Name()
	})
	return products, nil
}

func (r *productRepository) find(id kernel.UUID) (*product.Product, bool) {
	if p, ok := r.uow.pendingProducts[id]; ok {
		return p, true
	}
	p, ok := r.uow.store.products[id]
	return p, ok
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.find(aggregate.ID()); ok {
		return ErrAlreadyExists
	}

	exists, err := r.CodeExists(ctx, aggregate.Code())
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyExists
	}

	staged, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.pendingOrders[aggregate.ID()] = staged
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := r.find(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	staged, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.pendingOrders[aggregate.ID()] = staged
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o, ok := r.find(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return cloneOrder(o)
}

func (r *orderRepository) GetByCode(_ context.Context, code kernel.DispatchCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	for _, o := range r.uow.pendingOrders {
		if o.Code().IsEqual(code) {
			return cloneOrder(o)
		}
	}

	if id, ok := r.uow.store.byCode[code.String()]; ok {
		if o, found := r.uow.store.orders[id]; found {
			return cloneOrder(o)
		}
	}

	return nil, errs.NewObjectNotFoundError("order", code.String())
}

func (r *orderRepository) CodeExists(_ context.Context, code kernel.DispatchCode) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	for _, o := range r.uow.pendingOrders {
		if o.Code().IsEqual(code) {
			return true, nil
		}
	}

	_, ok := r.uow.store.byCode[code.String()]
	return ok, nil
}

func (r *orderRepository) GetAllOpenBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	seen := make(map[kernel.UUID]*order.Order)
	for id, o := range r.uow.store.orders {
		seen[id] = o
	}
	for id, o := range r.uow.pendingOrders {
		seen[id] = o
	}

	orders := make([]*order.Order, 0)
	for _, o := range seen {
		if !o.IsOpen() || !o.CreatedAt().Before(cutoff) {
			continue
		}

		clone, err := cloneOrder(o)
		if err != nil {
			return nil, err
		}
		orders = append(orders, clone)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}

func (r *orderRepository) find(id kernel.UUID) (*order.Order, bool) {
	if o, ok := r.uow.pendingOrders[id]; ok {
		return o, true
	}
	o, ok := r.uow.store.orders[id]
	return o, ok
}

type revenueRepository struct {
	uow *UnitOfWork
}

func (r *revenueRepository) Add(_ context.Context, entry revenue.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	for _, existing := range r.uow.store.entries {
		if existing.OrderCode().IsEqual(entry.OrderCode()) {
			return ErrAlreadyExists
		}
	}
	for _, staged := range r.uow.pendingEntries {
		if staged.OrderCode().IsEqual(entry.OrderCode()) {
			return ErrAlreadyExists
		}
	}

	r.uow.pendingEntries = append(r.uow.pendingEntries, entry)
	return nil
}

func (r *revenueRepository) GetRange(
	_ context.Context,
	from time.Time,
	to time.Time,
) ([]revenue.Entry, error) {
	entries := make([]revenue.Entry, 0)
	for _, entry := range r.uow.store.entries {
		if entry.RecordedAt().Before(from) || entry.RecordedAt().After(to) {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt().Before(entries[j].RecordedAt())
	})
	return entries, nil
}

type tariffRepository struct {
	uow *UnitOfWork
}

func (r *tariffRepository) Get(_ context.Context) (tariff.FeeTable, error) {
	if r.uow.pendingFeeTable != nil {
		return *r.uow.pendingFeeTable, nil
	}
	if r.uow.store.feeTable != nil {
		return *r.uow.store.feeTable, nil
	}

	return tariff.FeeTable{}, errs.NewObjectNotFoundError("fee table", "active")
}

func (r *tariffRepository) Save(_ context.Context, feeTable tariff.FeeTable) error {
	if err := feeTable.Validate(); err != nil {
		return err
	}

	r.uow.pendingFeeTable = &feeTable
	return nil
}
