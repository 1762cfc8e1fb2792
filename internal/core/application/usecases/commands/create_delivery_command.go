package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a request to admit a new delivery for a
// truck and driver pair.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	destination string
	scheduledAt time.Time
	cargoType   delivery.CargoType
	value       kernel.Money
	truckID     kernel.UUID
	driverID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to admit a delivery.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	destination string,
	scheduledAt time.Time,
	cargoType delivery.CargoType,
	value kernel.Money,
	truckID kernel.UUID,
	driverID kernel.UUID,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		cargoType.Validate(),
		value.Validate(),
		truckID.Validate(),
		driverID.Validate(),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}
	if destination == "" {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredError("destination")
	}
	if scheduledAt.IsZero() {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredError("scheduledAt")
	}

	return CreateDeliveryCommand{
		deliveryID:  deliveryID,
		destination: destination,
		scheduledAt: scheduledAt,
		cargoType:   cargoType,
		value:       value,
		truckID:     truckID,
		driverID:    driverID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Destination returns the delivery destination.
func (c CreateDeliveryCommand) Destination() string {
	return c.destination
}

// ScheduledAt returns the requested delivery date.
func (c CreateDeliveryCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// CargoType returns the declared cargo type.
func (c CreateDeliveryCommand) CargoType() delivery.CargoType {
	return c.cargoType
}

// Value returns the declared cargo value, before any regional adjustment.
func (c CreateDeliveryCommand) Value() kernel.Money {
	return c.value
}

// TruckID returns the assigned truck.
func (c CreateDeliveryCommand) TruckID() kernel.UUID {
	return c.truckID
}

// DriverID returns the assigned driver.
func (c CreateDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}
