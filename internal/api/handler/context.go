package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/middleware"
	"github.com/workwell/backoffice/internal/core/domain"
)

// dateLayout is the wire format for DATE columns (attendance dates, payroll
// months, invoice dates). Timestamps use RFC3339 via the default JSON codec.
const dateLayout = "2006-01-02"

// ctxUser extracts the user injected by the Auth middleware and fast-fails
// with 401 when it is absent, which would mean the middleware never ran.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

// pathID parses the named path parameter as a positive integer id.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// parseDate parses a required YYYY-MM-DD field.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, field+" must be formatted as "+dateLayout)
	}
	return t, nil
}

// parseOptionalDate parses a YYYY-MM-DD field that may be absent.
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
