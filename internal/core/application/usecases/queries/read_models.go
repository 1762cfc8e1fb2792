// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/truck"
)

// TruckResponse is the read model for a truck.
// It is also the representation stored under the truck's cache key, so
// command handlers populate exactly what query handlers read.
type TruckResponse struct {
	ID                string  `json:"id"`
	Plate             string  `json:"plate"`
	Model             string  `json:"model"`
	ManufacturingYear *int    `json:"manufacturingYear,omitempty"`
	DriverID          *string `json:"driverId,omitempty"`
}

// TruckResponseFromAggregate converts a truck aggregate to its read model.
func TruckResponseFromAggregate(t *truck.Truck) TruckResponse {
	var driverID *string
	if id := t.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	return TruckResponse{
		ID:                t.ID().String(),
		Plate:             t.Plate(),
		Model:             t.Model(),
		ManufacturingYear: t.ManufacturingYear(),
		DriverID:          driverID,
	}
}

// DriverResponse is the read model for a driver.
type DriverResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	License string `json:"license"`
}

// DriverResponseFromAggregate converts a driver aggregate to its read model.
func DriverResponseFromAggregate(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:      d.ID().String(),
		Name:    d.Name(),
		License: d.License(),
	}
}

// DeliveryResponse is the read model for a delivery. The three flags are the
// derived values computed by the aggregate; they are always consistent with
// the value and cargo type at read time.
type DeliveryResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CargoType   string    `json:"cargoType"`
	Value       string    `json:"value"`
	Valuable    bool      `json:"valuable"`
	Dangerous   bool      `json:"dangerous"`
	Insured     bool      `json:"insured"`
	TruckID     string    `json:"truckId"`
	DriverID    string    `json:"driverId"`
}

// DeliveryResponseFromAggregate converts a delivery aggregate to its read model.
func DeliveryResponseFromAggregate(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:          d.ID().String(),
		Destination: d.Destination(),
		ScheduledAt: d.ScheduledAt(),
		CargoType:   d.CargoType().String(),
		Value:       d.Value().String(),
		Valuable:    d.IsValuable(),
		Dangerous:   d.IsDangerous(),
		Insured:     d.HasInsurance(),
		TruckID:     d.TruckID().String(),
		DriverID:    d.DriverID().String(),
	}
}
