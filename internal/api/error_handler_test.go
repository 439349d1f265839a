package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workwell/backoffice/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid input", fmt.Errorf("%w: status %q", domain.ErrInvalidInput, "archived"), http.StatusBadRequest},
		{"invalid reference", domain.ErrInvalidReference, http.StatusBadRequest},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"duplicate sku", domain.ErrDuplicateSKU, http.StatusConflict},
		{"duplicate invoice", domain.ErrDuplicateInvoice, http.StatusConflict},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"attendance not found", domain.ErrAttendanceNotFound, http.StatusNotFound},
		{"payroll not found", domain.ErrPayrollNotFound, http.StatusNotFound},
		{"department not found", domain.ErrDepartmentNotFound, http.StatusNotFound},
		{"invoice not found", domain.ErrInvoiceNotFound, http.StatusNotFound},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid envelope: %v", err)
			}
			if body.Error == "" {
				t.Fatalf("empty error message")
			}
		})
	}
}

// Authentication failures carry no body at all.
func TestErrorHandler_UnauthorizedHasNoBody(t *testing.T) {
	for _, err := range []error{domain.ErrUnauthenticated, domain.ErrInvalidCredentials} {
		rec := handleError(t, err)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", rec.Body.String())
		}
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported media type"))
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if body.Error != "unsupported media type" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response overwritten: %d", rec.Code)
	}
}
