package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetFeesQueryHandler reads the active fee table from the database.
type GetFeesQueryHandler struct {
	db *gorm.DB
}

// NewGetFeesQueryHandler creates a handler for fee table queries.
// Requires a GORM database connection for query execution.
func NewGetFeesQueryHandler(db *gorm.DB) GetFeesQueryHandler {
	return GetFeesQueryHandler{db: db}
}

// Handle executes the query and returns the tiers ordered by distance bound.
func (h GetFeesQueryHandler) Handle(
	ctx context.Context,
	query GetFeesQuery,
) ([]GetFeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tiers := make([]GetFeesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			max_distance_km,
			fee
		FROM fee_tiers
		ORDER BY max_distance_km
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var maxDistanceKm float64
		var fee decimal.Decimal

		if err = rows.Scan(&maxDistanceKm, &fee); err != nil {
			return nil, err
		}

		tiers = append(tiers, GetFeesQueryResponse{
			MaxDistanceKm: maxDistanceKm,
			Fee:           fee.StringFixed(2),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tiers, nil
}
