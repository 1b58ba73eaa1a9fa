package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/osgbtech/screening-api/internal/config"
	"github.com/osgbtech/screening-api/internal/handler"
	catalogHandler "github.com/osgbtech/screening-api/internal/handler/catalog"
	screeningHandler "github.com/osgbtech/screening-api/internal/handler/screening"
	wizardHandler "github.com/osgbtech/screening-api/internal/handler/wizard"
	"github.com/osgbtech/screening-api/internal/middleware"
	"github.com/osgbtech/screening-api/internal/repository/postgres"
	"github.com/osgbtech/screening-api/internal/router"
	appointmentService "github.com/osgbtech/screening-api/internal/service/appointment"
	"github.com/osgbtech/screening-api/internal/service/document"
	"github.com/osgbtech/screening-api/internal/service/notification"
	wizardService "github.com/osgbtech/screening-api/internal/service/wizard"
	"github.com/osgbtech/screening-api/pkg/messaging/redis"
	"github.com/osgbtech/screening-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	broker, err := redis.NewRedisBroker(cfg.Redis.URL, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	m := metrics.NewMetrics("screening")

	// Repositories
	companyRepo := postgres.NewCompanyRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	testRepo := postgres.NewHealthTestRepository(db)
	equipmentRepo := postgres.NewEquipmentRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	// Services
	notifSvc := notification.NewService(broker, m)
	docGen := document.NewGenerator(broker, m)
	appointmentSvc := appointmentService.NewService(
		appointmentRepo, companyRepo, staffRepo, testRepo, notifSvc, docGen, m,
	)
	wizardSvc := wizardService.NewService(
		cfg.Wizard.SessionTTL(),
		companyRepo, staffRepo, testRepo, equipmentRepo, appointmentRepo, m,
	)

	// Handlers
	h := handler.NewHandler(db)
	catalogH := catalogHandler.NewHandler(companyRepo, staffRepo, testRepo, equipmentRepo)
	screeningH := screeningHandler.NewHandler(appointmentSvc)
	wizardH := wizardHandler.NewHandler(wizardSvc)

	r := router.NewRouter(catalogH, wizardH, screeningH, h, router.Config{
		RateLimit:     cfg.Server.RateLimit,
		RateBurst:     cfg.Server.RateBurst,
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPrefix: "screening_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
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
