package queries

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetDeliveriesByPeriodQueryIsNotConstructed = errors.New(
		"GetDeliveriesByPeriodQuery must be created via NewGetDeliveriesByPeriodQuery constructor",
	)
)

// GetDeliveriesByPeriodQuery retrieves a page of deliveries scheduled within
// an inclusive time range.
type GetDeliveriesByPeriodQuery struct {
	from time.Time
	to   time.Time
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByPeriodQuery creates a query for deliveries in [from, to].
func NewGetDeliveriesByPeriodQuery(from, to time.Time, page kernel.PageRequest) (GetDeliveriesByPeriodQuery, error) {
	if err := page.Validate(); err != nil {
		return GetDeliveriesByPeriodQuery{}, err
	}
	if from.IsZero() {
		return GetDeliveriesByPeriodQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetDeliveriesByPeriodQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetDeliveriesByPeriodQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}

	return GetDeliveriesByPeriodQuery{
		from:  from,
		to:    to,
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByPeriodQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByPeriodQueryIsNotConstructed)
}

// From returns the inclusive lower bound.
func (q GetDeliveriesByPeriodQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound.
func (q GetDeliveriesByPeriodQuery) To() time.Time {
	return q.to
}

// Page returns the requested page.
func (q GetDeliveriesByPeriodQuery) Page() kernel.PageRequest {
	return q.page
}
