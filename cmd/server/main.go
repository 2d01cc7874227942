package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/amivoice-web/internal/config"
	"github.com/MKhiriev/amivoice-web/internal/handler"
	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/internal/server"
	"github.com/MKhiriev/amivoice-web/internal/service"
	"github.com/MKhiriev/amivoice-web/internal/store"
	"github.com/MKhiriev/amivoice-web/models"
)

const appRole = "amivoice-web"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(appRole, config.DefaultLogLevel, false).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(appRole, cfg.Log.Level, cfg.App.Debug)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Assets, log)
	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Msg("Starting AmiVoice Real-time Transcription App")
	log.Info().Msgf("Server running on http://%s", cfg.Server.Address())
	log.Info().Msgf("Debug mode: %t", cfg.App.Debug)

	if err := srv.RunServer(); err != nil {
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
