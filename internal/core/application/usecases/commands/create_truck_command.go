package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
)

// CreateTruckCommand represents a request to register a new truck.
// Plate format, model length, and year bounds are enforced by the Truck
// aggregate; the command checks identity and required fields.
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID           kernel.UUID
	plate             string
	model             string
	manufacturingYear *int
	driverID          *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a new truck.
// manufacturingYear and driverID may be nil.
func NewCreateTruckCommand(
	truckID kernel.UUID, plate, model string, manufacturingYear *int, driverID *kernel.UUID,
) (CreateTruckCommand, error) {
	cmd := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTruckID(truckID),
		cmd.setPlate(plate),
		cmd.setModel(model),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	cmd.manufacturingYear = manufacturingYear
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// TruckID returns the identifier for the new truck.
func (c CreateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Plate returns the license plate.
func (c CreateTruckCommand) Plate() string {
	return c.plate
}

// Model returns the truck model name.
func (c CreateTruckCommand) Model() string {
	return c.model
}

// ManufacturingYear returns the optional manufacturing year.
func (c CreateTruckCommand) ManufacturingYear() *int {
	return c.manufacturingYear
}

// DriverID returns the optional owning driver.
func (c CreateTruckCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *CreateTruckCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *CreateTruckCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}

	c.plate = plate
	return nil
}

func (c *CreateTruckCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}
