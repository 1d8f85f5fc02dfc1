package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/api/metrics"
	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// EventHandler handles HTTP requests for tech event listings.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// --- Request / Response types ---

type eventRequest struct {
	Title            string    `json:"title" validate:"required"`
	Organization     string    `json:"organization" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	Venue            string    `json:"venue"`
	RegistrationLink string    `json:"registration_link"`
	StartDate        time.Time `json:"start_date" validate:"required"`
	EndDate          time.Time `json:"end_date" validate:"required"`
	Location         string    `json:"location" validate:"required"`
	Type             string    `json:"type" validate:"required"`
	Price            string    `json:"price"`
	TechStack        []string  `json:"tech_stack"`
	Speakers         []string  `json:"speakers"`
	Virtual          bool      `json:"virtual"`
	Tags             []string  `json:"tags"`
}

func (r eventRequest) toInput() ports.EventInput {
	return ports.EventInput{
		Title:            r.Title,
		Organization:     r.Organization,
		Description:      r.Description,
		Venue:            r.Venue,
		RegistrationLink: r.RegistrationLink,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Location:         r.Location,
		Type:             r.Type,
		Price:            r.Price,
		TechStack:        r.TechStack,
		Speakers:         r.Speakers,
		Virtual:          r.Virtual,
		Tags:             r.Tags,
	}
}

type deleteEventResponse struct {
	Message string `json:"message"`
}

type likeEventResponse struct {
	Message string `json:"message"`
	Likes   int64  `json:"likes"`
}

type registerEventResponse struct {
	Message   string `json:"message"`
	Attendees int64  `json:"attendees"`
}

// List handles GET /events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        skip        query     int     false  "Offset"        default(0)
// @Param        limit       query     int     false  "Page size"     default(20)
// @Param        sort_by     query     string  false  "start_date, created_at or likes"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200         {array}   domain.TechEvent
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context(), listOptions(c, "start_date"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id.
//
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  domain.TechEvent
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	event, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Create handles POST /events. Admin only.
//
// @Summary      Publish an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.TechEvent
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(string(event.Type)).Inc()

	return c.JSON(http.StatusCreated, event)
}

// Update handles PUT /events/:id. Admin only. The body carries the full set
// of writable fields; counters are preserved.
//
// @Summary      Replace an event's details
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Event ID"
// @Param        body  body      eventRequest  true  "Event details"
// @Success      200   {object}  domain.TechEvent
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:id. Admin only.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  deleteEventResponse
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteEventResponse{Message: "Event deleted"})
}

// Search handles GET /events/search.
//
// @Summary      Search events
// @Tags         events
// @Produce      json
// @Param        query             query     string    false  "Substring match on title, description or organization"
// @Param        location          query     string    false  "Substring match on location"
// @Param        type              query     string    false  "Event type"
// @Param        virtual           query     bool      false  "Virtual events only (or in-person only)"
// @Param        start_date_after  query     string    false  "ISO 8601 lower bound on start date"
// @Param        end_date_before   query     string    false  "ISO 8601 upper bound on end date"
// @Param        tech_stack        query     []string  false  "Technologies; repeatable, all must match"
// @Param        tags              query     []string  false  "Tags; repeatable, all must match"
// @Success      200               {array}   domain.TechEvent
// @Failure      422               {object}  map[string]string
// @Router       /events/search [get]
func (h *EventHandler) Search(c echo.Context) error {
	filter := ports.EventFilter{
		Query:     c.QueryParam("query"),
		Location:  c.QueryParam("location"),
		Virtual:   queryBool(c, "virtual"),
		TechStack: queryList(c, "tech_stack"),
		Tags:      queryList(c, "tags"),
	}

	if v := c.QueryParam("type"); v != "" {
		t := domain.EventType(v)
		if !t.Valid() {
			return domain.ErrInvalidEventType
		}
		filter.Type = t
	}

	var err error
	if filter.StartDateAfter, err = queryTime(c, "start_date_after"); err != nil {
		return err
	}
	if filter.EndDateBefore, err = queryTime(c, "end_date_before"); err != nil {
		return err
	}

	events, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Stats handles GET /events/stats.
//
// @Summary      Aggregate event statistics
// @Tags         events
// @Produce      json
// @Success      200  {object}  ports.EventStats
// @Router       /events/stats [get]
func (h *EventHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Like handles POST /events/:id/like. No authentication; likes are anonymous.
//
// @Summary      Like an event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  likeEventResponse
// @Failure      404  {object}  map[string]string
// @Router       /events/{id}/like [post]
func (h *EventHandler) Like(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Like(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likeEventResponse{Message: "Event liked successfully", Likes: likes})
}

// Register handles POST /events/:id/register.
//
// @Summary      Register attendance for an event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  registerEventResponse
// @Failure      404  {object}  map[string]string
// @Router       /events/{id}/register [post]
func (h *EventHandler) Register(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	attendees, err := h.service.Register(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registerEventResponse{Message: "Successfully registered for event", Attendees: attendees})
}
