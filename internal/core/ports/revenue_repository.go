package ports

import (
	"context"
	"time"

	"minishop/internal/core/domain/model/revenue"
)

// RevenueRepository defines the persistence contract for the cash ledger.
// The ledger is append only: entries are added exactly once per delivered
// order and never updated or deleted afterwards.
type RevenueRepository interface {
	// Add appends a ledger entry. Appending a second entry for the same
	// order code is an error.
	Add(ctx context.Context, entry revenue.Entry) error

	// GetRange retrieves every entry recorded within [from, to], ordered by
	// recording timestamp ascending.
	GetRange(ctx context.Context, from time.Time, to time.Time) ([]revenue.Entry, error)
}
