package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const apiVersion = "1.3"

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db      *mongo.Database
	started time.Time
}

func NewHealthHandler(db *mongo.Database) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

type healthResponse struct {
	Status         string `json:"status"`
	Uptime         string `json:"uptime"`
	Timestamp      string `json:"timestamp"`
	Database       string `json:"database"`
	Version        string `json:"version"`
	ResponseTimeMS int64  `json:"response_time_ms"`
	DBMessage      string `json:"db_message,omitempty"`
}

// Liveness handles GET /health. It always answers 200 so that a flapping
// database does not make the orchestrator cycle the container; a broken
// database shows up as status "degraded" instead.
//
// @Summary      Liveness probe
// @Tags         ops
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	start := time.Now()

	resp := healthResponse{
		Status:    "healthy",
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
		Version:   apiVersion,
	}

	if err := h.ping(c.Request().Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "error"
		resp.DBMessage = err.Error()
	}

	resp.ResponseTimeMS = time.Since(start).Milliseconds()
	return c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /health/ready. Unlike the liveness probe it fails
// with 503 when the database is unreachable, taking the instance out of the
// load balancer rotation.
//
// @Summary      Readiness probe
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return errors.New("database not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.db.Client().Ping(ctx, readpref.Primary())
}
