package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techbridge/events-api/internal/api/handler"
	"github.com/techbridge/events-api/internal/api/middleware"
	"github.com/techbridge/events-api/internal/core/ports"

	_ "github.com/techbridge/events-api/docs"
)

// Dependencies carries everything the router needs. Construction of the
// services happens in main so that tests can wire stubs here directly.
type Dependencies struct {
	Auth          ports.AuthService
	Users         ports.UserService
	Events        ports.EventService
	Opportunities ports.OpportunityService
	Mongo         *mongo.Database
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Collection routes accept both /events and /events/.
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("events_api"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	authMW := middleware.Auth(deps.Auth)
	adminMW := middleware.RequireAdmin()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	eventHandler := handler.NewEventHandler(deps.Events)
	oppHandler := handler.NewOpportunityHandler(deps.Opportunities)
	healthHandler := handler.NewHealthHandler(deps.Mongo)

	// --- Auth ---
	e.POST("/token", authHandler.Login)
	e.POST("/admin/create", authHandler.CreateAdmin)

	// --- Users ---
	e.POST("/users", userHandler.Register)

	me := e.Group("/users/me", authMW)
	me.GET("", userHandler.Me)
	me.PUT("", userHandler.UpdateMe)
	me.POST("/save-event/:id", userHandler.SaveEvent)
	me.POST("/save-opportunity/:id", userHandler.SaveOpportunity)
	me.GET("/saved-events", userHandler.SavedEvents)
	me.GET("/saved-opportunities", userHandler.SavedOpportunities)

	// --- Events ---
	events := e.Group("/events")
	events.GET("", eventHandler.List)
	events.GET("/search", eventHandler.Search)
	events.GET("/stats", eventHandler.Stats)
	events.GET("/:id", eventHandler.Get)
	events.POST("", eventHandler.Create, authMW, adminMW)
	events.PUT("/:id", eventHandler.Update, authMW, adminMW)
	events.DELETE("/:id", eventHandler.Delete, authMW, adminMW)
	events.POST("/:id/like", eventHandler.Like)
	events.POST("/:id/register", eventHandler.Register)

	// --- Opportunities ---
	opportunities := e.Group("/opportunities")
	opportunities.GET("", oppHandler.List)
	opportunities.GET("/search", oppHandler.Search)
	opportunities.GET("/stats", oppHandler.Stats)
	opportunities.GET("/:id", oppHandler.Get)
	opportunities.POST("", oppHandler.Create, authMW, adminMW)
	opportunities.PUT("/:id", oppHandler.Update, authMW, adminMW)
	opportunities.DELETE("/:id", oppHandler.Delete, authMW, adminMW)
	opportunities.POST("/:id/like", oppHandler.Like)
	opportunities.POST("/:id/apply", oppHandler.Apply)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
