package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// principal.
const PrincipalKey = "principal"

// Auth extracts the bearer token, validates it through the auth service and
// injects the live principal into the request context. Validation failures
// surface as 401 via the central error handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// Principal returns the principal stored by Auth, if any.
func Principal(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(*domain.Principal)
	return p, ok
}
