package commands

import (
	"context"
	"time"

	"minishop/internal/core/domain/model/revenue"
)

// ConfirmDeliveryCommandHandler records a completed cash delivery.
//
// The status transition and the revenue ledger append share one transaction.
// A second confirmation for the same order fails the transition before the
// ledger is touched, so the ledger gets exactly one entry per delivered
// order.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	deliveredAt := time.Now().UTC()

	if err = aggregate.Deliver(deliveredAt); err != nil {
		return err
	}

	entry, err := revenue.NewEntry(aggregate.Code(), aggregate.Total(), deliveredAt)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.RevenueRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
