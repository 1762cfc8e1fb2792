package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetDriverByIDQueryIsNotConstructed = errors.New(
		"GetDriverByIDQuery must be created via NewGetDriverByIDQuery constructor",
	)
)

// GetDriverByIDQuery retrieves a single driver by its identifier.
type GetDriverByIDQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverByIDQuery creates a query for one driver.
func NewGetDriverByIDQuery(driverID kernel.UUID) (GetDriverByIDQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverByIDQuery{}, err
	}

	return GetDriverByIDQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverByIDQueryIsNotConstructed)
}

// DriverID returns the identifier being looked up.
func (q GetDriverByIDQuery) DriverID() kernel.UUID {
	return q.driverID
}
