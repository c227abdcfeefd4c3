package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRevenueReportQueryHandler reads a revenue snapshot from the ledger.
// The ledger is append only, so a snapshot for a closed date range is stable
// and can be exported repeatedly with identical results.
type GetRevenueReportQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueReportQueryHandler creates a handler for revenue report queries.
// Requires a GORM database connection for query execution.
func NewGetRevenueReportQueryHandler(db *gorm.DB) GetRevenueReportQueryHandler {
	return GetRevenueReportQueryHandler{db: db}
}

// Handle executes the query. Entries are returned ordered by recording
// timestamp ascending.
func (h GetRevenueReportQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueReportQuery,
) ([]GetRevenueReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetRevenueReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_code,
			amount,
			recorded_at
		FROM revenue_entries
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderCode string
		var amount decimal.Decimal
		var recordedAt time.Time

		if err = rows.Scan(&orderCode, &amount, &recordedAt); err != nil {
			return nil, err
		}

		entries = append(entries, GetRevenueReportQueryResponse{
			OrderCode:  orderCode,
			Amount:     amount.StringFixed(2),
			RecordedAt: recordedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
