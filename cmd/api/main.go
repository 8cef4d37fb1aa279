package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpAdapter "github.com/schedbank/schedule-notify/internal/adapter/http"
	"github.com/schedbank/schedule-notify/internal/adapter/memory"
	"github.com/schedbank/schedule-notify/internal/adapter/queue"
	"github.com/schedbank/schedule-notify/internal/app"
	"github.com/schedbank/schedule-notify/internal/observability"
	"github.com/schedbank/schedule-notify/pkg/config"
	"github.com/schedbank/schedule-notify/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Misconfigured() {
		log.Warn("sqs notifications enabled but no queue url configured, notifications will be skipped")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sqsClient, err := queue.NewClient(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatal("failed to build sqs client", zap.Error(err))
	}

	metrics := observability.NewMetrics()

	notifierCfg := queue.Config{
		QueueURL: cfg.QueueURL,
		Enabled:  cfg.NotifyEnabled,
	}
	dispatcher := queue.NewDispatcher(sqsClient, notifierCfg, log, metrics)

	scheduleRepo := memory.NewScheduleRepo()
	scheduleService := app.NewScheduleService(scheduleRepo, dispatcher, log)

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		ScheduleHandler: httpAdapter.NewScheduleHandler(scheduleService),
		HealthHandler:   httpAdapter.NewHealthHandler(notifierCfg),
		Metrics:         metrics,
		Logger:          log,
		RateLimitPerSec: cfg.RateLimitPerSec,
	})

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting http server",
			zap.Int("port", cfg.AppPort),
			zap.String("region", cfg.AWSRegion),
			zap.Bool("notifications_enabled", cfg.NotifyEnabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
