// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The dispatch code carries a unique index because it is the public handle
// used by shopkeeper and courier alike.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"uniqueIndex;size:10"`
	DistanceKm  float64         `gorm:"type:double precision"`
	Fee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status      int             `gorm:"index"`
	CreatedAt   time.Time       `gorm:"index"`
	CompletedAt *time.Time
	Lines       []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced cart position of a persisted order.
// The unit price is a copy taken at placement so later catalog price changes
// do not alter the stored order.
type OrderLineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Name:      line.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code().String(),
		DistanceKm:  aggregate.Distance().Kilometers(),
		Fee:         aggregate.Fee().Decimal(),
		Total:       aggregate.Total().Decimal(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its frozen total using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.DispatchCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	distance, err := kernel.NewDistance(dto.DistanceKm)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		unitPrice, lineErr := kernel.NewMoney(lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(productID, lineDTO.Name, lineDTO.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		code,
		lines,
		distance,
		fee,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.CompletedAt,
	)
}
