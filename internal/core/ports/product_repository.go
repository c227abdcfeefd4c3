// Package ports defines repository and outbound adapter interfaces for the
// shop domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves product aggregates for the given identifiers,
	// locking each row for the remainder of the transaction. Used by stock
	// reservation so two concurrent carts cannot oversell shared items.
	// Missing identifiers are not an error; the caller detects them by
	// comparing the result against the request.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetAll retrieves every product in the catalog.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
