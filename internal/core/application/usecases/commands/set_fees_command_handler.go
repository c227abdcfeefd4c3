package commands

import (
	"context"
)

// SetFeesCommandHandler replaces the active fee table.
//
// Replacement only affects future placements: orders placed under the old
// table keep their frozen fee and total.
type SetFeesCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewSetFeesCommandHandler creates a handler for fee table replacement.
// Requires a TariffUoWFactory for transactional persistence.
func NewSetFeesCommandHandler(uowFactory TariffUoWFactory) SetFeesCommandHandler {
	return SetFeesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fee table replacement command.
func (h *SetFeesCommandHandler) Handle(ctx context.Context, cmd SetFeesCommand) error {
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

	if err := uow.TariffRepository().Save(ctx, cmd.FeeTable()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
