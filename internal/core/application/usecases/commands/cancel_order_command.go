package commands

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an open order and return
// its held stock to the shelf.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	code kernel.DispatchCode

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the order with the given code.
func NewCancelOrderCommand(code kernel.DispatchCode) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCode(code); err != nil {
		return CancelOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Code returns the dispatch code identifying the order.
func (c CancelOrderCommand) Code() kernel.DispatchCode {
	return c.code
}

func (c *CancelOrderCommand) setCode(code kernel.DispatchCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
