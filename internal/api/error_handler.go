package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Adds a WWW-Authenticate challenge to every 401.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Login failure message is deliberately identical for unknown identifier
	// and wrong password.
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()

	// Token validation failures all collapse to one generic 401 body so the
	// response does not reveal which check rejected the token.
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken),
		errors.Is(err, domain.ErrPrincipalNotFound):
		return http.StatusUnauthorized, "could not validate credentials"

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, domain.ErrNotUserAccount):
		return http.StatusBadRequest, domain.ErrNotUserAccount.Error()

	case errors.Is(err, domain.ErrAdminExists),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrOpportunityNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrInvalidEventType),
		errors.Is(err, domain.ErrInvalidOppType),
		errors.Is(err, domain.ErrEndBeforeStart),
		errors.Is(err, domain.ErrDeadlinePast):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
