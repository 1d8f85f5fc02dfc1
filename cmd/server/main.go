// Command server runs the tech events and research opportunities API.
//
//	@title						TechBridge Events API
//	@version					1.3
//	@description				REST backend for tech event and research opportunity listings.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techbridge/events-api/internal/api"
	"github.com/techbridge/events-api/internal/core/service"
	"github.com/techbridge/events-api/internal/infrastructure/config"
	mongodb "github.com/techbridge/events-api/internal/infrastructure/db/mongo"
	"github.com/techbridge/events-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Repositories and services ---
	adminRepo := mongodb.NewAdminRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	oppRepo := mongodb.NewOpportunityRepository(db)

	userTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	authService := service.NewAuthService(adminRepo, userRepo, cfg.JWTSecret, userTTL, log)
	userService := service.NewUserService(userRepo, eventRepo, oppRepo, log)
	eventService := service.NewEventService(eventRepo, log)
	oppService := service.NewOpportunityService(oppRepo, log)

	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("default admin bootstrap failed")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:          authService,
		Users:         userService,
		Events:        eventService,
		Opportunities: oppService,
		Mongo:         db,
		Log:           log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
