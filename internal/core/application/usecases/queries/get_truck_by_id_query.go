package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetTruckByIDQueryIsNotConstructed = errors.New(
		"GetTruckByIDQuery must be created via NewGetTruckByIDQuery constructor",
	)
)

// GetTruckByIDQuery retrieves a single truck by its identifier.
type GetTruckByIDQuery struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTruckByIDQuery creates a query for one truck.
func NewGetTruckByIDQuery(truckID kernel.UUID) (GetTruckByIDQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetTruckByIDQuery{}, err
	}

	return GetTruckByIDQuery{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckByIDQueryIsNotConstructed)
}

// TruckID returns the identifier being looked up.
func (q GetTruckByIDQuery) TruckID() kernel.UUID {
	return q.truckID
}
