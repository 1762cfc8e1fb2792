// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The value is stored as numeric(14,2) and mapped through decimal.Decimal so
// amounts never pass through a float. The derived flags are persisted as
// computed by the aggregate and recomputed again on restore.
type DeliveryDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Destination string          `gorm:"type:varchar(100);not null"`
	ScheduledAt time.Time       `gorm:"not null;index"`
	CargoType   string          `gorm:"type:varchar(20);not null"`
	Value       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Valuable    bool            `gorm:"not null"`
	Dangerous   bool            `gorm:"not null"`
	Insured     bool            `gorm:"not null"`
	TruckID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID    uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries" instead of "delivery_dtos".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		Destination: aggregate.Destination(),
		ScheduledAt: aggregate.ScheduledAt(),
		CargoType:   aggregate.CargoType().String(),
		Value:       aggregate.Value().Decimal(),
		Valuable:    aggregate.IsValuable(),
		Dangerous:   aggregate.IsDangerous(),
		Insured:     aggregate.HasInsurance(),
		TruckID:     aggregate.TruckID().Bytes(),
		DriverID:    aggregate.DriverID().Bytes(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	cargoType, err := delivery.CargoTypeFromString(dto.CargoType)
	if err != nil {
		return nil, err
	}

	value, err := kernel.NewMoneyFromDecimal(dto.Value)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, dto.Destination, dto.ScheduledAt, cargoType, value, truckID, driverID)
}
