package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/openlms/courseadmin/internal/config"
	"github.com/openlms/courseadmin/internal/events"
	"github.com/openlms/courseadmin/internal/handler"
	"github.com/openlms/courseadmin/internal/repository"
	"github.com/openlms/courseadmin/internal/router"
	"github.com/openlms/courseadmin/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		logger.Info("audit event publishing enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	}
	defer func() { _ = publisher.Close() }()

	settingsService := service.NewSettingsService(db, cfg.Features, cfg.Proctoring, logger)
	rosterService := service.NewRosterService(db, publisher, logger)
	overrideService := service.NewOverrideService(db, logger)
	transcriptService := service.NewTranscriptService(cfg.Transcript, logger)

	settingsHandler := handler.NewSettingsHandler(settingsService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	overrideHandler := handler.NewOverrideHandler(overrideService)
	transcriptHandler := handler.NewTranscriptHandler(transcriptService)

	r := router.SetupRoutes(settingsHandler, rosterHandler, overrideHandler, transcriptHandler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
