// Package truckrepo provides data transfer objects and mapping functions for truck persistence.
// This package implements the repository pattern for the truck domain aggregate, handling
// the conversion between domain entities and database representations.
package truckrepo

import (
	"fleet/internal/adapters/out/postgres/deliveryrepo"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
// Deliveries reference trucks with a cascading foreign key, so removing a
// truck removes its deliveries at the database level.
type TruckDTO struct {
	ID                uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Plate             string                     `gorm:"type:varchar(7);not null"`
	Model             string                     `gorm:"type:varchar(50);not null"`
	ManufacturingYear *int                       `gorm:"type:int"`
	DriverID          *uuid.UUID                 `gorm:"type:uuid;index"`
	Deliveries        []deliveryrepo.DeliveryDTO `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for truck entities.
// Overrides GORM's default naming convention to use "trucks" instead of "truck_dtos".
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database representation.
func fromDomain(aggregate *truck.Truck) TruckDTO {
	var driverID *uuid.UUID
	if aggregate.DriverID() != nil {
		raw := aggregate.DriverID().Bytes()
		driverID = &raw
	}

	return TruckDTO{
		ID:                aggregate.ID().Bytes(),
		Plate:             aggregate.Plate(),
		Model:             aggregate.Model(),
		ManufacturingYear: aggregate.ManufacturingYear(),
		DriverID:          driverID,
	}
}

// toDomain converts a database DTO to a truck domain aggregate.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, idErr := kernel.UUIDFromBytes(dto.DriverID[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &parsed
	}

	return truck.RestoreTruck(id, dto.Plate, dto.Model, dto.ManufacturingYear, driverID)
}
