package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/dermacare/booking-api/internal/config"
	"github.com/dermacare/booking-api/internal/email"
	"github.com/dermacare/booking-api/internal/repository/postgres"
	internalworker "github.com/dermacare/booking-api/internal/worker"
	"github.com/dermacare/booking-api/pkg/logger"
	"github.com/dermacare/booking-api/pkg/messaging/redis"
	"github.com/dermacare/booking-api/pkg/metrics"
	"github.com/dermacare/booking-api/pkg/worker"
)

func setupHealthCheck(port int, lg *logger.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
			lg.ZL.Error().Err(err).Msg("Health check server failed")
			os.Exit(1)
		}
	}()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	workerCfg, err := config.LoadWorkerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load worker config")
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	lg := &logger.Logger{ZL: log.Logger}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		lg.ZL.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(cfg.ToBrokerConfig(), &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis broker")
	}
	defer broker.Close()

	outboxRepo := postgres.NewOutboxRepository(db)
	emailer := email.NewSMTPService(cfg.SMTP)

	processor := worker.NewOutboxProcessor(
		outboxRepo,
		broker,
		emailer,
		worker.OutboxProcessorConfig{
			BatchSize:     workerCfg.BatchSize,
			PollInterval:  workerCfg.PollInterval,
			RetryAttempts: workerCfg.RetryAttempts,
			RetryDelay:    workerCfg.RetryDelay,
		},
		lg,
		metrics.NewMetrics("outbox_processor"),
	)

	setupHealthCheck(workerCfg.HealthPort, lg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanup := internalworker.NewOutboxCleanupWorker(outboxRepo, workerCfg.RetentionDays, workerCfg.CleanupInterval)
	go cleanup.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		lg.ZL.Info().Msg("Shutting down...")
		cancel()
	}()

	processor.Start(ctx)
}
