package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// parseID reads the `id` query parameter shared by every resource route.
func parseID(c echo.Context) (int, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return 0, apierror.InvalidIDError
	}
	return id, nil
}

func parseLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

func parseOffset(c echo.Context) int {
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// bindBody decodes the JSON body into req. A field-level type mismatch is a
// client error and maps to that field's wire code; anything else wrong with
// the body (truncated JSON, wrong content type) is reported as a 500, which
// is what the contract promises for malformed bodies.
func bindBody(c echo.Context, req any, faults apierror.FaultTable) apierror.ErrorResponse {
	err := c.Bind(req)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if fault, ok := faults[typeErr.Field]; ok {
			return apierror.New(http.StatusBadRequest, fault.Code, fault.Message)
		}
		return apierror.NewSimple(http.StatusBadRequest, "Invalid type for field '%s'", typeErr.Field)
	}
	return apierror.InternalServerError
}
