// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database and return plain response structures.
package queries

import (
	"errors"

	"minishop/internal/pkg/guard"
)

var ErrGetFeesQueryIsNotConstructed = errors.New(
	"GetFeesQuery must be created via NewGetFeesQuery constructor",
)

// GetFeesQuery retrieves the active delivery fee table.
//
// Example:
//
//	query := NewGetFeesQuery()
//	handler := NewGetFeesQueryHandler(db)
//
//	tiers, err := handler.Handle(ctx, query)
//	for _, tier := range tiers {
//	    fmt.Printf("up to %g km: %s\n", tier.MaxDistanceKm, tier.Fee)
//	}
type GetFeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFeesQuery creates a query to retrieve the fee table.
func NewGetFeesQuery() GetFeesQuery {
	return GetFeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFeesQueryIsNotConstructed if validation fails.
func (q GetFeesQuery) Validate() error {
	return q.guard.Validate(ErrGetFeesQueryIsNotConstructed)
}

// GetFeesQueryResponse represents one fee tier of the active table.
type GetFeesQueryResponse struct {
	MaxDistanceKm float64
	Fee           string
}
