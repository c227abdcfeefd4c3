package revenuerepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"minishop/internal/core/domain/model/revenue"
)

// GormRevenueRepository implements RevenueRepository using GORM.
// Entries are only ever inserted; there is no update or delete path.
type GormRevenueRepository struct {
	db *gorm.DB
}

// NewGormRevenueRepository creates a new GORM revenue repository.
func NewGormRevenueRepository(db *gorm.DB) *GormRevenueRepository {
	return &GormRevenueRepository{db: db}
}

// Add appends a ledger entry. The primary key on the order code turns a
// second append for the same order into a duplicate key error.
func (r *GormRevenueRepository) Add(ctx context.Context, entry revenue.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRange retrieves entries recorded within [from, to], ordered by
// recording timestamp ascending.
func (r *GormRevenueRepository) GetRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]revenue.Entry, error) {
	var dtos []RevenueEntryDTO
	err := r.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to).
		Order("recorded_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]revenue.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
