package http

import (
	"strconv"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultPageSize is applied when the size query parameter is absent.
const defaultPageSize = 10

// TruckRequest is the JSON body for creating or updating a truck.
type TruckRequest struct {
	Plate             string  `json:"plate"`
	Model             string  `json:"model"`
	ManufacturingYear *int    `json:"manufacturingYear,omitempty"`
	DriverID          *string `json:"driverId,omitempty"`
}

// DriverRequest is the JSON body for creating or updating a driver.
type DriverRequest struct {
	Name    string `json:"name"`
	License string `json:"license"`
}

// DeliveryRequest is the JSON body for admitting a delivery.
type DeliveryRequest struct {
	Destination string    `json:"destination"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CargoType   string    `json:"cargoType"`
	Value       string    `json:"value"`
	TruckID     string    `json:"truckId"`
	DriverID    string    `json:"driverId"`
}

// pathUUID parses the :id path parameter.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// requiredUUID parses a UUID that the request must carry.
func requiredUUID(raw, param string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(param)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

// optionalUUID parses a UUID that may be absent. Absent and empty both map
// to nil.
func optionalUUID(raw *string, param string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return &id, nil
}

// pageRequest builds a PageRequest from the page, size, sort, and direction
// query parameters. Defaults: page 0, size 10, ascending, and the caller's
// default sort field. The sort field is checked against allowedSortFields.
func pageRequest(
	ctx echo.Context, defaultSort string, allowedSortFields []string,
) (kernel.PageRequest, error) {
	page := 0
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.PageRequest{}, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
		page = parsed
	}

	size := defaultPageSize
	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return kernel.PageRequest{}, errs.NewValueIsInvalidErrorWithCause("size", err)
		}
		size = parsed
	}

	sortField := defaultSort
	if raw := ctx.QueryParam("sort"); raw != "" {
		sortField = raw
	}

	ascending := true
	if raw := ctx.QueryParam("direction"); raw != "" {
		parsed, err := kernel.SortDirectionFromString(raw)
		if err != nil {
			return kernel.PageRequest{}, err
		}
		ascending = parsed
	}

	return kernel.NewPageRequest(page, size, sortField, ascending, allowedSortFields)
}

// dateParam parses a required yyyy-mm-dd query parameter.
func dateParam(ctx echo.Context, param string) (time.Time, error) {
	raw := ctx.QueryParam(param)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError(param)
	}
	parsed, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return parsed, nil
}
