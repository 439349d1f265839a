package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/core/domain"
	"github.com/workwell/backoffice/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "backoffice_session"

// Context keys set by Auth for downstream middleware and handlers.
const (
	ContextUser   = "user"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Auth resolves the session cookie to a user and injects it into the request
// context. Requests without a valid, unexpired session get a 401 with an
// empty body; the client treats that as a redirect to the login page.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.NoContent(http.StatusUnauthorized)
			}

			user, err := auth.CurrentUser(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return c.NoContent(http.StatusUnauthorized)
				}
				return err
			}

			c.Set(ContextUser, user)
			c.Set(ContextUserID, user.ID)
			c.Set(ContextRole, user.Role)

			return next(c)
		}
	}
}
