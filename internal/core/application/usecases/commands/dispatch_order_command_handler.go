package commands

import (
	"context"
	"errors"
	"fmt"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/ports"
)

// ErrDispatchFailed is returned when the courier channel could not be
// reached. The order stays in the placed status and the dispatch can be
// retried.
var ErrDispatchFailed = errors.New("dispatch failed")

// DispatchFailedError provides detail about a failed courier notification.
type DispatchFailedError struct {
	Code  kernel.DispatchCode
	Cause error
}

// NewDispatchFailedError creates a DispatchFailedError for the given code.
func NewDispatchFailedError(code kernel.DispatchCode, cause error) *DispatchFailedError {
	return &DispatchFailedError{Code: code, Cause: cause}
}

// Error implements the error interface.
func (e *DispatchFailedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDispatchFailed, e.Code, e.Cause)
}

// Unwrap enables errors.Is checks against ErrDispatchFailed and the cause.
func (e *DispatchFailedError) Unwrap() []error {
	return []error{ErrDispatchFailed, e.Cause}
}

// DispatchOrderCommandHandler hands a placed order to the courier channel
// and records the dispatched status.
//
// The courier notification is a network call, so it happens outside of any
// database transaction. The handler reads and validates the order in one
// transaction, notifies, and records the transition in a second one. If the
// notification fails the order is left in the placed status so the dispatch
// can be retried.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.DispatchNotifier
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch operations.
func NewDispatchOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.DispatchNotifier,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch command.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	note, err := h.loadDispatchNote(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, note); err != nil {
		return NewDispatchFailedError(cmd.Code(), err)
	}

	return h.recordDispatch(ctx, cmd.Code())
}

// loadDispatchNote reads the order and verifies it can still be dispatched
// before any network call is made.
func (h *DispatchOrderCommandHandler) loadDispatchNote(
	ctx context.Context,
	code kernel.DispatchCode,
) (ports.DispatchNote, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.DispatchNote{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetByCode(ctx, code)
	if err != nil {
		return ports.DispatchNote{}, err
	}

	if _, err = aggregate.Status().Dispatch(); err != nil {
		return ports.DispatchNote{}, err
	}

	note := ports.DispatchNote{
		Code:  aggregate.Code(),
		Fee:   aggregate.Fee(),
		Total: aggregate.Total(),
	}
	for _, line := range aggregate.Lines() {
		note.Items = append(note.Items, ports.DispatchItem{
			Name:      line.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.DispatchNote{}, err
	}

	return note, nil
}

// recordDispatch reloads the order and records the transition. The reload
// guards against a state change that happened while the notification was in
// flight.
func (h *DispatchOrderCommandHandler) recordDispatch(ctx context.Context, code kernel.DispatchCode) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
