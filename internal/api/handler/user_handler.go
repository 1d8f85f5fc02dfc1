package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/api/metrics"
	"github.com/techbridge/events-api/internal/core/ports"
)

// UserHandler handles HTTP requests for member registration, profiles and
// saved lists.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// --- Request / Response types ---

type registerUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type updateProfileRequest struct {
	Email        *string  `json:"email" validate:"omitempty,email"`
	FullName     *string  `json:"full_name"`
	Bio          *string  `json:"bio"`
	ProfileImage *string  `json:"profile_image"`
	Interests    []string `json:"interests"`
}

type toggleSavedResponse struct {
	Success bool `json:"success"`
}

// Register handles POST /users.
//
// @Summary      Register a member account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusCreated, user)
}

// Me handles GET /users/me.
//
// @Summary      Get the authenticated member's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /users/me.
//
// @Summary      Update the authenticated member's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change; omitted fields keep their value"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), user, ports.UpdateProfileInput{
		Email:        req.Email,
		FullName:     req.FullName,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		Interests:    req.Interests,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// SaveEvent handles POST /users/me/save-event/:id. Saving an already-saved
// event removes it again.
//
// @Summary      Toggle an event on the saved list
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  toggleSavedResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me/save-event/{id} [post]
func (h *UserHandler) SaveEvent(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	eventID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.ToggleSavedEvent(c.Request().Context(), user, eventID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleSavedResponse{Success: true})
}

// SaveOpportunity handles POST /users/me/save-opportunity/:id with the same
// toggle semantics as SaveEvent.
//
// @Summary      Toggle an opportunity on the saved list
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  toggleSavedResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me/save-opportunity/{id} [post]
func (h *UserHandler) SaveOpportunity(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	opportunityID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.ToggleSavedOpportunity(c.Request().Context(), user, opportunityID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleSavedResponse{Success: true})
}

// SavedEvents handles GET /users/me/saved-events.
//
// @Summary      List the member's saved events
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TechEvent
// @Failure      401  {object}  map[string]string
// @Router       /users/me/saved-events [get]
func (h *UserHandler) SavedEvents(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	events, err := h.service.SavedEvents(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// SavedOpportunities handles GET /users/me/saved-opportunities.
//
// @Summary      List the member's saved opportunities
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ResearchOpportunity
// @Failure      401  {object}  map[string]string
// @Router       /users/me/saved-opportunities [get]
func (h *UserHandler) SavedOpportunities(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	opportunities, err := h.service.SavedOpportunities(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opportunities)
}

// pathID parses the :id path parameter shared by the resource routes.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "id must be an integer")
	}
	return id, nil
}
