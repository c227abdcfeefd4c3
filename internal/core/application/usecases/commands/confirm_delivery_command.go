package commands

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the shopkeeper confirming that cash was
// collected for a dispatched order.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	code kernel.DispatchCode

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery of the
// order with the given code.
func NewConfirmDeliveryCommand(code kernel.DispatchCode) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCode(code); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Code returns the dispatch code identifying the order.
func (c ConfirmDeliveryCommand) Code() kernel.DispatchCode {
	return c.code
}

func (c *ConfirmDeliveryCommand) setCode(code kernel.DispatchCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}
