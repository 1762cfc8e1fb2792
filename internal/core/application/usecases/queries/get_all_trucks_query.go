package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetAllTrucksQueryIsNotConstructed = errors.New(
		"GetAllTrucksQuery must be created via NewGetAllTrucksQuery constructor",
	)
)

// TruckSortFields lists the columns the truck listing may be sorted by.
var TruckSortFields = []string{"plate", "model", "manufacturing_year"}

// GetAllTrucksQuery retrieves a page of the truck listing.
type GetAllTrucksQuery struct {
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetAllTrucksQuery creates a query for a page of trucks.
func NewGetAllTrucksQuery(page kernel.PageRequest) (GetAllTrucksQuery, error) {
	if err := page.Validate(); err != nil {
		return GetAllTrucksQuery{}, err
	}

	return GetAllTrucksQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTrucksQueryIsNotConstructed)
}

// Page returns the requested page.
func (q GetAllTrucksQuery) Page() kernel.PageRequest {
	return q.page
}
