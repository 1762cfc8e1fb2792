// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"fleet/internal/adapters/out/postgres/deliveryrepo"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The license number carries a unique index. Deliveries reference drivers with
// a cascading foreign key, so removing a driver removes the driver's deliveries
// at the database level.
type DriverDTO struct {
	ID         uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Name       string                     `gorm:"type:varchar(100);not null"`
	License    string                     `gorm:"type:varchar(11);not null;uniqueIndex"`
	Deliveries []deliveryrepo.DeliveryDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		License: aggregate.License(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.License)
}
