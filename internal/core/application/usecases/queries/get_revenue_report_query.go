package queries

import (
	"errors"
	"time"

	"minishop/internal/pkg/guard"
)

var (
	ErrGetRevenueReportQueryIsNotConstructed = errors.New(
		"GetRevenueReportQuery must be created via NewGetRevenueReportQuery constructor",
	)
	ErrReportRangeIsInvalid = errors.New("report range end must not precede its start")
)

// GetRevenueReportQuery retrieves the revenue ledger entries recorded within
// a date range.
//
// Example:
//
//	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
//	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
//	query, err := NewGetRevenueReportQuery(from, to)
type GetRevenueReportQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetRevenueReportQuery creates a query for the given inclusive range.
// The end of the range must not precede its start.
func NewGetRevenueReportQuery(from time.Time, to time.Time) (GetRevenueReportQuery, error) {
	if to.Before(from) {
		return GetRevenueReportQuery{}, ErrReportRangeIsInvalid
	}

	return GetRevenueReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRevenueReportQueryIsNotConstructed if validation fails.
func (q GetRevenueReportQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueReportQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q GetRevenueReportQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the range.
func (q GetRevenueReportQuery) To() time.Time {
	return q.to
}

// GetRevenueReportQueryResponse represents one ledger entry of the report.
type GetRevenueReportQueryResponse struct {
	OrderCode  string
	Amount     string
	RecordedAt time.Time
}
