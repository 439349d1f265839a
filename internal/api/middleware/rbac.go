package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/workwell/backoffice/internal/api/metrics"
	"github.com/workwell/backoffice/internal/core/domain"
)

// RBAC enforces a per-route role allow-list. The check is a pure membership
// test on the role injected by Auth: no hierarchy, no ownership knowledge.
// Routes that want super_admin access must list it explicitly. Denials return
// domain.ErrForbidden, which the central error handler renders as a 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.ForbiddenTotal.WithLabelValues(c.Path()).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
