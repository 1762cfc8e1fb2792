package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrDeleteTruckCommandIsNotConstructed = errors.New(
		"DeleteTruckCommand must be created via NewDeleteTruckCommand constructor",
	)
)

// DeleteTruckCommand represents a request to remove a truck and, by cascade,
// all of its deliveries.
type DeleteTruckCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTruckCommand creates a command to delete a truck.
func NewDeleteTruckCommand(truckID kernel.UUID) (DeleteTruckCommand, error) {
	if err := truckID.Validate(); err != nil {
		return DeleteTruckCommand{}, err
	}

	return DeleteTruckCommand{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTruckCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTruckCommandIsNotConstructed)
}

// TruckID returns the identifier of the truck to delete.
func (c DeleteTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}
