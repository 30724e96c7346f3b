package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/velez94/scoringames-sub000/config"
	"github.com/velez94/scoringames-sub000/db"
	"github.com/velez94/scoringames-sub000/handlers"
	"github.com/velez94/scoringames-sub000/live"
	"github.com/velez94/scoringames-sub000/repositories"
	api "github.com/velez94/scoringames-sub000/routes"
	"github.com/velez94/scoringames-sub000/services"
	"github.com/velez94/scoringames-sub000/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	var snapshots storage.SnapshotStore
	if cfg.SnapshotsEnabled() {
		snapshots, err = storage.NewCloudflareR2Store(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 snapshot store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 snapshot store initialized")
	} else {
		logger.Info("R2 snapshot store not configured, published schedules will not be mirrored")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	categoryRepo := repositories.NewPostgresCategoryRepository(dbConn)
	athleteRepo := repositories.NewPostgresAthleteRepository(dbConn)
	wodRepo := repositories.NewPostgresWODRepository(dbConn)
	scheduleRepo := repositories.NewPostgresScheduleRepository(dbConn)
	matchResultRepo := repositories.NewPostgresMatchResultRepository(dbConn)
	logger.Info("repositories initialized")

	rosterService := services.NewRosterService(eventRepo, categoryRepo, athleteRepo, wodRepo)
	scheduleService := services.NewScheduleService(dbConn, rosterService, scheduleRepo, snapshots, wsHub, logger)
	progressionService := services.NewProgressionService(dbConn, rosterService, scheduleRepo, matchResultRepo, wsHub, logger)
	standingsService := services.NewStandingsService(scheduleRepo, matchResultRepo)
	logger.Info("services initialized")

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	roundHandler := handlers.NewRoundHandler(progressionService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, logger)

	router := chi.NewRouter()
	api.SetupRoutes(router, scheduleHandler, roundHandler, standingsHandler, webSocketHandler)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
