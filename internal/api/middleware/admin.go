package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/core/domain"
)

// RequireAdmin gates admin-only routes. It must run after Auth; any
// non-admin principal is rejected with ErrForbidden (403).
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok || p.Kind != domain.KindAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
