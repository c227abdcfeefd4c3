// Package tariffrepo persists the active delivery fee table.
package tariffrepo

import (
	"github.com/shopspring/decimal"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/tariff"
)

// FeeTierDTO represents one persisted tier of the fee table. The shop keeps
// a single table, so the distance bound doubles as the primary key.
type FeeTierDTO struct {
	MaxDistanceKm float64         `gorm:"primaryKey;type:double precision"`
	Fee           decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for fee tiers.
func (FeeTierDTO) TableName() string {
	return "fee_tiers"
}

// fromDomain converts a fee table to its database representation.
func fromDomain(feeTable tariff.FeeTable) []FeeTierDTO {
	tiers := feeTable.Tiers()
	dtos := make([]FeeTierDTO, 0, len(tiers))
	for _, tier := range tiers {
		dtos = append(dtos, FeeTierDTO{
			MaxDistanceKm: tier.MaxDistanceKm(),
			Fee:           tier.Fee().Decimal(),
		})
	}

	return dtos
}

// toDomain converts database rows to a fee table. Rows must arrive ordered
// by distance bound; NewFeeTable rejects anything malformed.
func toDomain(dtos []FeeTierDTO) (tariff.FeeTable, error) {
	tiers := make([]tariff.Tier, 0, len(dtos))
	for _, dto := range dtos {
		fee, err := kernel.NewMoney(dto.Fee)
		if err != nil {
			return tariff.FeeTable{}, err
		}

		tier, err := tariff.NewTier(dto.MaxDistanceKm, fee)
		if err != nil {
			return tariff.FeeTable{}, err
		}

		tiers = append(tiers, tier)
	}

	return tariff.NewFeeTable(tiers)
}
