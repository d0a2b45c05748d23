package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/dermacare/booking-api/internal/config"
	"github.com/dermacare/booking-api/internal/handler"
	bookingHandler "github.com/dermacare/booking-api/internal/handler/booking"
	doctorHandler "github.com/dermacare/booking-api/internal/handler/doctor"
	"github.com/dermacare/booking-api/internal/middleware"
	"github.com/dermacare/booking-api/internal/repository/postgres"
	"github.com/dermacare/booking-api/internal/router"
	appointmentService "github.com/dermacare/booking-api/internal/service/appointment"
	doctorService "github.com/dermacare/booking-api/internal/service/doctor"
	"github.com/dermacare/booking-api/pkg/auth"
	"github.com/dermacare/booking-api/pkg/logger"
	"github.com/dermacare/booking-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.Log.Level))

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	m := metrics.NewMetrics("booking_api")

	appointmentSvc := appointmentService.NewService(
		appointmentRepo,
		doctorRepo,
		patientRepo,
		outboxRepo,
		time.Duration(cfg.Cache.SlotTTLSeconds)*time.Second,
		m,
	)
	doctorSvc := doctorService.NewService(doctorRepo)

	verifier := auth.NewVerifier(cfg.Identity.Secret)

	h := handler.NewHandler(db)
	bookingH := bookingHandler.NewHandler(appointmentSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)

	r := router.NewRouter(verifier, bookingH, doctorH, h, router.RouterConfig{
		RateLimit:     rate.Limit(cfg.Server.RateLimitRPS),
		RateBurst:     cfg.Server.RateLimitBurst,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "booking_api_http",
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
