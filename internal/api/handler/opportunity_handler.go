package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techbridge/events-api/internal/api/metrics"
	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// OpportunityHandler handles HTTP requests for research opportunity listings.
type OpportunityHandler struct {
	service ports.OpportunityService
}

func NewOpportunityHandler(service ports.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{service: service}
}

// --- Request / Response types ---

type opportunityRequest struct {
	Title        string    `json:"title" validate:"required"`
	Organization string    `json:"organization" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Type         string    `json:"type" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	Deadline     time.Time `json:"deadline" validate:"required"`
	Duration     string    `json:"duration"`
	Compensation string    `json:"compensation"`
	Requirements []string  `json:"requirements"`
	Fields       []string  `json:"fields"`
	ContactEmail string    `json:"contact_email" validate:"required,email"`
	Virtual      bool      `json:"virtual"`
	Tags         []string  `json:"tags"`
}

func (r opportunityRequest) toInput() ports.OpportunityInput {
	return ports.OpportunityInput{
		Title:        r.Title,
		Organization: r.Organization,
		Description:  r.Description,
		Type:         r.Type,
		Location:     r.Location,
		Deadline:     r.Deadline,
		Duration:     r.Duration,
		Compensation: r.Compensation,
		Requirements: r.Requirements,
		Fields:       r.Fields,
		ContactEmail: r.ContactEmail,
		Virtual:      r.Virtual,
		Tags:         r.Tags,
	}
}

type deleteOpportunityResponse struct {
	Message string `json:"message"`
}

type opportunityActionResponse struct {
	Message string `json:"message"`
}

// List handles GET /opportunities.
//
// @Summary      List research opportunities
// @Tags         opportunities
// @Produce      json
// @Param        skip        query     int     false  "Offset"     default(0)
// @Param        limit       query     int     false  "Page size"  default(20)
// @Param        sort_by     query     string  false  "deadline, created_at or likes"
// @Param        sort_order  query     string  false  "asc or desc"
// @Success      200         {array}   domain.ResearchOpportunity
// @Router       /opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	opportunities, err := h.service.List(c.Request().Context(), listOptions(c, "deadline"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opportunities)
}

// Get handles GET /opportunities/:id.
//
// @Summary      Get an opportunity by ID
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  domain.ResearchOpportunity
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	opp, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// Create handles POST /opportunities. Admin only. The deadline must be in
// the future at creation time.
//
// @Summary      Publish a research opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      opportunityRequest  true  "Opportunity details"
// @Success      201   {object}  domain.ResearchOpportunity
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	opp, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.OpportunitiesCreatedTotal.WithLabelValues(string(opp.Type)).Inc()

	return c.JSON(http.StatusCreated, opp)
}

// Update handles PUT /opportunities/:id. Admin only.
//
// @Summary      Replace an opportunity's details
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Opportunity ID"
// @Param        body  body      opportunityRequest  true  "Opportunity details"
// @Success      200   {object}  domain.ResearchOpportunity
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	opp, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// Delete handles DELETE /opportunities/:id. Admin only.
//
// @Summary      Delete an opportunity
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  deleteOpportunityResponse
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteOpportunityResponse{Message: "Opportunity deleted"})
}

// Search handles GET /opportunities/search.
//
// @Summary      Search research opportunities
// @Tags         opportunities
// @Produce      json
// @Param        query           query     string    false  "Substring match on title, description or organization"
// @Param        location        query     string    false  "Substring match on location"
// @Param        type            query     string    false  "Opportunity type"
// @Param        virtual         query     bool      false  "Remote opportunities only (or on-site only)"
// @Param        deadline_after  query     string    false  "ISO 8601 lower bound on deadline"
// @Param        fields          query     []string  false  "Research fields; repeatable, all must match"
// @Param        tags            query     []string  false  "Tags; repeatable, all must match"
// @Success      200             {array}   domain.ResearchOpportunity
// @Failure      422             {object}  map[string]string
// @Router       /opportunities/search [get]
func (h *OpportunityHandler) Search(c echo.Context) error {
	filter := ports.OpportunityFilter{
		Query:    c.QueryParam("query"),
		Location: c.QueryParam("location"),
		Virtual:  queryBool(c, "virtual"),
		Fields:   queryList(c, "fields"),
		Tags:     queryList(c, "tags"),
	}

	if v := c.QueryParam("type"); v != "" {
		t := domain.OpportunityType(v)
		if !t.Valid() {
			return domain.ErrInvalidOppType
		}
		filter.Type = t
	}

	var err error
	if filter.DeadlineAfter, err = queryTime(c, "deadline_after"); err != nil {
		return err
	}

	opportunities, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opportunities)
}

// Stats handles GET /opportunities/stats.
//
// @Summary      Aggregate opportunity statistics
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  ports.OpportunityStats
// @Router       /opportunities/stats [get]
func (h *OpportunityHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Like handles POST /opportunities/:id/like.
//
// @Summary      Like an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  opportunityActionResponse
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id}/like [post]
func (h *OpportunityHandler) Like(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Like(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opportunityActionResponse{Message: "Like recorded"})
}

// Apply handles POST /opportunities/:id/apply.
//
// @Summary      Record an application for an opportunity
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  opportunityActionResponse
// @Failure      404  {object}  map[string]string
// @Router       /opportunities/{id}/apply [post]
func (h *OpportunityHandler) Apply(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Apply(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opportunityActionResponse{Message: "Application recorded"})
}
