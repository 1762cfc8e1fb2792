package queries

import (
	"errors"
	"time"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetTodayTotalQueryIsNotConstructed = errors.New(
		"GetTodayTotalQuery must be created via NewGetTodayTotalQuery constructor",
	)
)

// GetTodayTotalQuery retrieves the summed value of all deliveries scheduled
// on a calendar day. The day is fixed when the query is built, so a request
// arriving just before midnight is answered for the day it was made.
type GetTodayTotalQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetTodayTotalQuery creates a query for the given day's total.
func NewGetTodayTotalQuery(day time.Time) (GetTodayTotalQuery, error) {
	if day.IsZero() {
		return GetTodayTotalQuery{}, errs.NewValueIsRequiredError("day")
	}

	return GetTodayTotalQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTodayTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayTotalQueryIsNotConstructed)
}

// Day returns the day being summed.
func (q GetTodayTotalQuery) Day() time.Time {
	return q.day
}

// TodayTotalResponse is the read model for the daily total aggregate.
type TodayTotalResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}
