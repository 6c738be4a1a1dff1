package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/handler"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/metrics"
	"github.com/MKhiriev/go-green-pledge/internal/server"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("green-pledge-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	metrics.SetBuildInfo(buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate())

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
