package queries

import (
	"errors"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/guard"
)

var ErrGetStockQueryIsNotConstructed = errors.New(
	"GetStockQuery must be created via NewGetStockQuery constructor",
)

// GetStockQuery retrieves the current catalog with shelf quantities.
type GetStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query to retrieve the catalog stock levels.
func NewGetStockQuery() GetStockQuery {
	return GetStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockQueryIsNotConstructed if validation fails.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// GetStockQueryResponse represents one catalog product with its shelf quantity.
type GetStockQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price string
	Stock int
}
