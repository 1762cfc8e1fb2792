package kernel

import (
	"fmt"
	"slices"
	"strings"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const (
	// PageSizeMin is the smallest allowed page size.
	PageSizeMin = 1
	// PageSizeMax is the largest allowed page size.
	PageSizeMax = 100
)

// ErrPageRequestIsNotConstructed is returned when validating a zero-value PageRequest.
var ErrPageRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"PageRequest must be created via NewPageRequest")

// PageRequest is a validated pagination and sorting configuration.
// It replaces framework-managed pageable objects with a plain value object:
// a zero-based page index, a bounded page size, a sort field checked against
// the set of fields the target entity actually exposes, and a direction.
type PageRequest struct { //nolint:recvcheck //using for validation
	page      int
	size      int
	sortField string
	ascending bool

	guard guard.ConstructorGuard
}

// NewPageRequest creates a validated PageRequest.
// The sort field must be one of allowedSortFields; requests naming a
// non-existent field are rejected rather than passed through to SQL.
func NewPageRequest(
	page, size int, sortField string, ascending bool, allowedSortFields []string,
) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page))
	}
	if size < PageSizeMin || size > PageSizeMax {
		return PageRequest{}, errs.NewValueIsOutOfRangeError("size", size, PageSizeMin, PageSizeMax)
	}
	if !slices.Contains(allowedSortFields, sortField) {
		return PageRequest{}, errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not a sortable field", sortField))
	}

	return PageRequest{
		page:      page,
		size:      size,
		sortField: sortField,
		ascending: ascending,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// SortDirectionFromString parses "ASC" or "DESC" (case-insensitive) into the
// ascending flag used by NewPageRequest.
func SortDirectionFromString(s string) (bool, error) {
	switch strings.ToUpper(s) {
	case "ASC":
		return true, nil
	case "DESC":
		return false, nil
	default:
		return false, errs.NewValueIsInvalidErrorWithCause("direction",
			fmt.Errorf("%q is not ASC or DESC", s))
	}
}

// Validate ensures the PageRequest was created through NewPageRequest.
func (p PageRequest) Validate() error {
	return p.guard.Validate(ErrPageRequestIsNotConstructed)
}

// Page returns the zero-based page index.
func (p PageRequest) Page() int {
	return p.page
}

// Size returns the page size.
func (p PageRequest) Size() int {
	return p.size
}

// SortField returns the validated sort field name.
func (p PageRequest) SortField() string {
	return p.sortField
}

// Ascending reports whether sorting is ascending.
func (p PageRequest) Ascending() bool {
	return p.ascending
}

// Offset returns the row offset corresponding to the page index.
func (p PageRequest) Offset() int {
	return p.page * p.size
}

// OrderClause renders the "field direction" fragment used by query adapters.
func (p PageRequest) OrderClause() string {
	direction := "ASC"
	if !p.ascending {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", p.sortField, direction)
}
