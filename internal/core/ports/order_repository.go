package ports

import (
	"context"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are addressed by their anonymous dispatch code rather than by a
// customer identity.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its dispatch code.
	GetByCode(ctx context.Context, code kernel.DispatchCode) (*order.Order, error)

	// CodeExists reports whether an order with the given dispatch code is
	// already stored. Used during code generation to guarantee uniqueness.
	CodeExists(ctx context.Context, code kernel.DispatchCode) (bool, error)

	// GetAllOpenBefore retrieves orders still in a non-terminal status that
	// were created before the given cutoff. Used by the stale order job.
	GetAllOpenBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
