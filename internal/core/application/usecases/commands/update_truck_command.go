package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrUpdateTruckCommandIsNotConstructed = errors.New(
		"UpdateTruckCommand must be created via NewUpdateTruckCommand constructor",
	)
)

// UpdateTruckCommand represents a request to replace a truck's mutable fields.
type UpdateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID           kernel.UUID
	plate             string
	model             string
	manufacturingYear *int
	driverID          *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateTruckCommand creates a command to update an existing truck.
func NewUpdateTruckCommand(
	truckID kernel.UUID, plate, model string, manufacturingYear *int, driverID *kernel.UUID,
) (UpdateTruckCommand, error) {
	cmd := UpdateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := truckID.Validate(); err != nil {
		return UpdateTruckCommand{}, err
	}
	if plate == "" {
		return UpdateTruckCommand{}, errs.NewValueIsRequiredError("plate")
	}
	if model == "" {
		return UpdateTruckCommand{}, errs.NewValueIsRequiredError("model")
	}

	cmd.truckID = truckID
	cmd.plate = plate
	cmd.model = model
	cmd.manufacturingYear = manufacturingYear
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTruckCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTruckCommandIsNotConstructed)
}

// TruckID returns the identifier of the truck to update.
func (c UpdateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Plate returns the new license plate.
func (c UpdateTruckCommand) Plate() string {
	return c.plate
}

// Model returns the new model name.
func (c UpdateTruckCommand) Model() string {
	return c.model
}

// ManufacturingYear returns the new optional manufacturing year.
func (c UpdateTruckCommand) ManufacturingYear() *int {
	return c.manufacturingYear
}

// DriverID returns the new optional owning driver.
func (c UpdateTruckCommand) DriverID() *kernel.UUID {
	return c.driverID
}
