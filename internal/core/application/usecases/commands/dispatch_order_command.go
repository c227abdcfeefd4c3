package commands

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand represents a request to hand a placed order to the
// courier channel. The order is addressed by its anonymous dispatch code.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	code kernel.DispatchCode

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch the order with the
// given code.
func NewDispatchOrderCommand(code kernel.DispatchCode) (DispatchOrderCommand, error) {
	command := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCode(code); err != nil {
		return DispatchOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOrderCommandIsNotConstructed if validation fails.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// Code returns the dispatch code identifying the order.
func (c DispatchOrderCommand) Code() kernel.DispatchCode {
	return c.code
}

func (c *DispatchOrderCommand) setCode(code kernel.DispatchCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
