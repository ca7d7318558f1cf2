package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"amenities-dashboard/config"
	"amenities-dashboard/di"
	"amenities-dashboard/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.SetGlobalLogger(logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}))

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("dataset", cfg.Dataset.Path).Msg("loading amenities catalog")
	if _, err := container.CatalogRefresherService.RefreshAmenitiesData(); err != nil {
		log.Fatal().Err(err).Msg("initial catalog load failed")
	}
	if interval := cfg.RefreshInterval(); interval > 0 {
		log.Info().Dur("interval", interval).Msg("starting periodic catalog refresh")
		container.CatalogRefresherService.StartPeriodicJob(ctx, interval)
	}

	serveErr := container.AmenitiesHttpServer.Run(ctx)
	if err := container.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}
	if serveErr != nil {
		log.Fatal().Err(serveErr).Msg("server stopped")
	}
}
