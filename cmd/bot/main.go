package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activity_notification_bot/internal/app"
	"activity_notification_bot/internal/infra/config"
	idb "activity_notification_bot/internal/infra/database"
	infraDiscord "activity_notification_bot/internal/infra/discord"
	"activity_notification_bot/internal/infra/httpapi"
	"activity_notification_bot/internal/infra/logger"
	"activity_notification_bot/internal/infra/scheduler"

	"github.com/go-chi/chi/v5"
)

func main() {
	fmt.Println("Activity Notification Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, MessageShape: %s, SkipArchivedRecords: %t",
		cfg.LogLevel, cfg.Environment, cfg.MessageShape, cfg.SkipArchivedRecords)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize Repositories
	activityRepo := idb.NewPostgresActivityRepository(db)
	userRepo := idb.NewPostgresUserRepository(db)
	settingsRepo := idb.NewPostgresSettingsRepository(db)
	log.Info("Repositories initialized.")

	// Initialize Discord Client
	discordClient := infraDiscord.NewHTTPClient(cfg.DiscordAPIBaseURL, cfg.DiscordHTTPTimeout)
	log.Infof("Discord client initialized for %s.", discordClient.BaseURL)

	// Initialize SweepService
	sweepService := app.NewSweepService(
		activityRepo,
		userRepo,
		settingsRepo,
		discordClient,
		log,
		cfg.MessageShape,
		cfg.SkipArchivedRecords,
	)
	log.Info("Sweep service initialized.")

	// Initialize and start the SweepScheduler
	sweepScheduler := scheduler.NewSweepScheduler(sweepService, log, cfg.CronSpecSweep)
	if err := sweepScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start sweep scheduler: %v", err)
	}

	// Admin API (settings passthrough + manual sweep trigger)
	router := chi.NewRouter()
	httpapi.RegisterRoutes(router, &httpapi.App{
		Settings: settingsRepo,
		Sweeper:  sweepScheduler,
		Logger:   log,
	})
	adminServer := &http.Server{Addr: cfg.AdminListenAddr, Handler: router}
	go func() {
		log.Infof("Admin API listening on %s.", cfg.AdminListenAddr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: Admin API server failed: %v", err)
		}
	}()

	log.Info("Application setup complete. Scheduler and admin API are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	sweepScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Admin API shutdown error: %v", err)
	}
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
