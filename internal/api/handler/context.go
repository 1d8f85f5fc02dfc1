package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/api/middleware"
	"github.com/techbridge/events-api/internal/core/domain"
)

// currentPrincipal extracts the principal injected by the Auth middleware.
// Its absence means the route was wired without the middleware; fail closed.
func currentPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}

// currentUser resolves the principal to a member account. Admin tokens are
// structurally valid on profile routes but have no profile to operate on.
func currentUser(c echo.Context) (*domain.User, error) {
	p, err := currentPrincipal(c)
	if err != nil {
		return nil, err
	}
	if p.Kind != domain.KindUser {
		return nil, domain.ErrNotUserAccount
	}
	return p.User, nil
}
