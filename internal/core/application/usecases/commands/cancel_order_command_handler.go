package commands

import (
	"context"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an open order and returns its held stock
// to the shelf in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory CancelUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a CancelUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory CancelUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if err = cancelAndRestock(ctx, uow, aggregate, time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// cancelAndRestock transitions the order to cancelled and returns each line's
// quantity to the product it was held from. Shared with the stale order job.
func cancelAndRestock(ctx context.Context, uow CancelUoW, aggregate *order.Order, at time.Time) error {
	if err := aggregate.Cancel(at); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()

	ids := make([]kernel.UUID, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		ids = append(ids, line.ProductID())
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID()] = i
	}

	for _, line := range aggregate.Lines() {
		// A product removed from the catalog after placement has nothing
		// left to restock.
		i, ok := byID[line.ProductID()]
		if !ok {
			continue
		}

		if err = products[i].Restore(line.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, products[i]); err != nil {
			return err
		}
	}

	return uow.OrderRepository().Update(ctx, aggregate)
}
