package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/api/metrics"
	"github.com/techbridge/events-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for login and admin management.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// --- Request / Response types ---

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserType    string `json:"user_type"`
	UserID      *int64 `json:"user_id,omitempty"`
	Username    string `json:"username"`
}

type createAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type createAdminResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Login handles POST /token.
//
// Credentials arrive as an OAuth2 password-grant form body
// (application/x-www-form-urlencoded with username and password fields).
//
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username (or email for member accounts)"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  loginResponse
// @Failure      401       {object}  map[string]string
// @Router       /token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	result, err := h.service.Login(c.Request().Context(), username, password)
	if err != nil {
		metrics.LoginFailuresTotal.Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(result.UserType)).Inc()

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		UserType:    string(result.UserType),
		UserID:      result.UserID,
		Username:    result.Username,
	})
}

// CreateAdmin handles POST /admin/create.
//
// @Summary      Create an administrator account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      createAdminRequest  true  "Admin credentials"
// @Success      201   {object}  createAdminResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/create [post]
func (h *AuthHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.service.CreateAdmin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createAdminResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		CreatedAt: admin.CreatedAt,
	})
}
