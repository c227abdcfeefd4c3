package tariffrepo

import (
	"context"

	"gorm.io/gorm"

	"minishop/internal/core/domain/model/tariff"
	"minishop/internal/pkg/errs"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// Get retrieves the active fee table.
func (r *GormTariffRepository) Get(ctx context.Context) (tariff.FeeTable, error) {
	var dtos []FeeTierDTO
	err := r.db.WithContext(ctx).
		Order("max_distance_km").
		Find(&dtos).Error
	if err != nil {
		return tariff.FeeTable{}, err
	}

	if len(dtos) == 0 {
		return tariff.FeeTable{}, errs.NewObjectNotFoundError("fee table", "active")
	}

	return toDomain(dtos)
}

// Save replaces the active fee table as a whole.
func (r *GormTariffRepository) Save(ctx context.Context, feeTable tariff.FeeTable) error {
	if err := feeTable.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&FeeTierDTO{}).Error; err != nil {
		return err
	}

	dtos := fromDomain(feeTable)
	return db.Create(&dtos).Error
}
