package commands

import (
	"errors"

	"minishop/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand triggers cancellation of open orders whose grace
// period has expired. Run periodically by the job scheduler.
type CancelStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to sweep stale orders.
// This is a parameterless command; the grace period lives on the handler.
func NewCancelStaleOrdersCommand() CancelStaleOrdersCommand {
	return CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c *CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}
