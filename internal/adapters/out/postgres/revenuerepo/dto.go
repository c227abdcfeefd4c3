// Package revenuerepo persists the append-only revenue ledger.
package revenuerepo

import (
	"time"

	"github.com/shopspring/decimal"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/revenue"
)

// RevenueEntryDTO represents one persisted ledger entry. The order code is
// the primary key, which makes a duplicate append for the same delivered
// order a constraint violation rather than a silent double booking.
type RevenueEntryDTO struct {
	OrderCode  string          `gorm:"primaryKey;size:10"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordedAt time.Time       `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (RevenueEntryDTO) TableName() string {
	return "revenue_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry revenue.Entry) RevenueEntryDTO {
	return RevenueEntryDTO{
		OrderCode:  entry.OrderCode().String(),
		Amount:     entry.Amount().Decimal(),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto RevenueEntryDTO) (revenue.Entry, error) {
	code, err := kernel.DispatchCodeFromString(dto.OrderCode)
	if err != nil {
		return revenue.Entry{}, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return revenue.Entry{}, err
	}

	return revenue.RestoreEntry(code, amount, dto.RecordedAt)
}
