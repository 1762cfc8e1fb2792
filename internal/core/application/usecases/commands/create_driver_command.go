package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
)

// CreateDriverCommand represents a request to register a new driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	license  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(driverID kernel.UUID, name, license string) (CreateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return CreateDriverCommand{}, err
	}
	if name == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("name")
	}
	if license == "" {
		return CreateDriverCommand{}, errs.NewValueIsRequiredError("license")
	}

	return CreateDriverCommand{
		driverID: driverID,
		name:     name,
		license:  license,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's full name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// License returns the driver's license number.
func (c CreateDriverCommand) License() string {
	return c.license
}
