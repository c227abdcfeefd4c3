package ports

import (
	"context"

	"minishop/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for the active fee table.
// The shop keeps exactly one fee table; Save replaces it as a whole.
type TariffRepository interface {
	// Get retrieves the active fee table.
	Get(ctx context.Context) (tariff.FeeTable, error)

	// Save replaces the active fee table with the given one.
	Save(ctx context.Context, feeTable tariff.FeeTable) error
}
