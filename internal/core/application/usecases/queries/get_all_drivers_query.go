package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetAllDriversQueryIsNotConstructed = errors.New(
		"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
	)
)

// DriverSortFields lists the columns the driver listing may be sorted by.
var DriverSortFields = []string{"name", "license"}

// GetAllDriversQuery retrieves a page of the driver listing.
type GetAllDriversQuery struct {
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query for a page of drivers.
func NewGetAllDriversQuery(page kernel.PageRequest) (GetAllDriversQuery, error) {
	if err := page.Validate(); err != nil {
		return GetAllDriversQuery{}, err
	}

	return GetAllDriversQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// Page returns the requested page.
func (q GetAllDriversQuery) Page() kernel.PageRequest {
	return q.page
}
