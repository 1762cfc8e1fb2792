package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrUpdateDriverCommandIsNotConstructed = errors.New(
		"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
	)
)

// UpdateDriverCommand represents a request to replace a driver's mutable fields.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	license  string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update an existing driver.
func NewUpdateDriverCommand(driverID kernel.UUID, name, license string) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}
	if name == "" {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}
	if license == "" {
		return UpdateDriverCommand{}, errs.NewValueIsRequiredError("license")
	}

	return UpdateDriverCommand{
		driverID: driverID,
		name:     name,
		license:  license,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the new full name.
func (c UpdateDriverCommand) Name() string {
	return c.name
}

// License returns the new license number.
func (c UpdateDriverCommand) License() string {
	return c.license
}
