package http

import (
	"errors"
	"fmt"
	"net/http"

	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
// Rule is set only for business-rule rejections; Fields only for
// field-level validation failures.
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Rule    string            `json:"rule,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeError maps an application error onto an HTTP response.
//
// Business-rule rejections and validation failures are client errors and
// return 400 with a body the client can act on. Missing objects return 404.
// Everything else is an infrastructure failure and returns a generic 500;
// the detail stays in the server log, not the response.
func writeError(ctx echo.Context, err error) error {
	var ruleErr *errs.BusinessRuleError
	if errors.As(err, &ruleErr) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: ruleErr.Message,
			Rule:    ruleErr.Rule,
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if fields := fieldErrors(err); len(fields) > 0 {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Fields:  fields,
		})
	}

	ctx.Logger().Error(err)
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

// fieldErrors flattens an error into a field name to message map.
// Joined validation errors report every failing field at once.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	collectFieldErrors(err, fields)
	return fields
}

func collectFieldErrors(err error, fields map[string]string) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectFieldErrors(e, fields)
		}
		return
	}

	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		fields[required.ParamName] = "is required"
		return
	}

	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) {
		fields[outOfRange.ParamName] = fmt.Sprintf(
			"must be between %v and %v", outOfRange.Min, outOfRange.Max)
		return
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		msg := "is invalid"
		if invalid.Cause != nil {
			msg = invalid.Cause.Error()
		}
		fields[invalid.ParamName] = msg
		return
	}
}
