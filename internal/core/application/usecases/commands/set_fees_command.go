package commands

import (
	"errors"

	"minishop/internal/core/domain/model/tariff"
	"minishop/internal/pkg/guard"
)

var ErrSetFeesCommandIsNotConstructed = errors.New(
	"SetFeesCommand must be created via NewSetFeesCommand constructor",
)

// SetFeesCommand represents a request to replace the active fee table.
// The tiers must already form a valid table: non-empty, strictly increasing
// distance bounds and non-decreasing fees.
type SetFeesCommand struct { //nolint:recvcheck //using for validation
	feeTable tariff.FeeTable

	guard guard.ConstructorGuard
}

// NewSetFeesCommand creates a command to install the given tiers as the
// active fee table. Tier validation happens here so an invalid table never
// reaches a handler.
func NewSetFeesCommand(tiers []tariff.Tier) (SetFeesCommand, error) {
	command := SetFeesCommand{
		guard: guard.NewConstructorGuard(),
	}

	feeTable, err := tariff.NewFeeTable(tiers)
	if err != nil {
		return SetFeesCommand{}, err
	}
	command.feeTable = feeTable

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetFeesCommandIsNotConstructed if validation fails.
func (c SetFeesCommand) Validate() error {
	return c.guard.Validate(ErrSetFeesCommandIsNotConstructed)
}

// FeeTable returns the validated replacement fee table.
func (c SetFeesCommand) FeeTable() tariff.FeeTable {
	return c.feeTable
}
