package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"minishop/internal/core/domain/model/kernel"
)

// GetStockQueryHandler reads the catalog with shelf quantities from the database.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock queries.
// Requires a GORM database connection for query execution.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query and returns the catalog sorted by product name.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var price decimal.Decimal
		var stock int

		if err = rows.Scan(&id, &name, &price, &stock); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, GetStockQueryResponse{
			ID:    productID,
			Name:  name,
			Price: price.StringFixed(2),
			Stock: stock,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
