package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
		"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
	)
)

// DeliverySortFields lists the columns the delivery listing may be sorted by.
var DeliverySortFields = []string{"scheduled_at", "destination", "value"}

// GetAllDeliveriesQuery retrieves a page of the delivery listing.
type GetAllDeliveriesQuery struct {
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query for a page of deliveries.
func NewGetAllDeliveriesQuery(page kernel.PageRequest) (GetAllDeliveriesQuery, error) {
	if err := page.Validate(); err != nil {
		return GetAllDeliveriesQuery{}, err
	}

	return GetAllDeliveriesQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}

// Page returns the requested page.
func (q GetAllDeliveriesQuery) Page() kernel.PageRequest {
	return q.page
}
