package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/osgbtech/screening-api/internal/config"
	"github.com/osgbtech/screening-api/internal/email"
	"github.com/osgbtech/screening-api/internal/worker"
	"github.com/osgbtech/screening-api/pkg/logger"
	"github.com/osgbtech/screening-api/pkg/messaging/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	broker, err := redis.NewRedisBroker(cfg.Redis.URL, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	emailSvc := email.NewService(cfg.SMTP)
	dispatcher := worker.NewDispatcher(broker, emailSvc, logger.NewLogger(nil))

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		if err := dispatcher.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("dispatcher stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker...")
	cancel()
}
