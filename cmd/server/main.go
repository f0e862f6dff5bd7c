package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/config"
	"github.com/diegoclair/shift-timeslots/internal/database"
	"github.com/diegoclair/shift-timeslots/internal/domain/service"
	"github.com/diegoclair/shift-timeslots/internal/handlers"
	"github.com/diegoclair/shift-timeslots/internal/logger"
	"github.com/diegoclair/shift-timeslots/internal/scheduler"
	"github.com/diegoclair/shift-timeslots/migrator/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zapLogger.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	services := service.NewInstance(database.NewInstance(db), zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(services.Timeslot, cfg.Materializer, zapLogger)
	sched.RunOnce(ctx)
	sched.Start(ctx)
	defer sched.Stop()

	slackHandler := handlers.New(services.Timeslot, cfg.Slack.SigningSecret, cfg.Slack.AdminUserID, zapLogger)

	var api *handlers.APIHandler
	if cfg.HTTP.APIEnabled {
		api = handlers.NewAPI(services.Timeslot, cfg.Slack.AdminUserID, zapLogger)
	}

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handlers.NewRouter(slackHandler, api, cfg.HTTP, zapLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("port", cfg.App.Port), zap.Bool("api_enabled", cfg.HTTP.APIEnabled))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("failed to shut down server", zap.Error(err))
	}
}
