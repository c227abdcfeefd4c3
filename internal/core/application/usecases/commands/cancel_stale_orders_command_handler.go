package commands

import (
	"context"
	"time"

	"minishop/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler sweeps placed orders that outlived their
// grace period, cancelling each one and returning its stock to the shelf.
// All cancellations of one sweep happen in a single transaction.
type CancelStaleOrdersCommandHandler struct {
	uowFactory  CancelUoWFactory
	gracePeriod time.Duration
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order sweep.
// Orders older than gracePeriod that are still placed get cancelled.
func NewCancelStaleOrdersCommandHandler(
	uowFactory CancelUoWFactory,
	gracePeriod time.Duration,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory:  uowFactory,
		gracePeriod: gracePeriod,
	}
}

// Handle processes the stale order sweep command.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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

	now := time.Now().UTC()
	cutoff := now.Add(-h.gracePeriod)

	stale, err := uow.OrderRepository().GetAllOpenBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		// Dispatched orders are already with the courier; only orders still
		// waiting for dispatch are swept.
		if aggregate.Status() != order.Placed {
			continue
		}
		if err = cancelAndRestock(ctx, uow, aggregate, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
