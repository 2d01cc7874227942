package service

import (
	"github.com/MKhiriev/amivoice-web/internal/config"
	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/internal/store"
)

// Services groups the services used by the transport layer.
type Services struct {
	AppInfoService AppInfoService
	AssetService   AssetService
}

// NewServices wires every service from the storages and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AppInfoService: NewAppInfoService(cfg.App, logger),
		AssetService:   NewAssetService(storages, cfg.App.AmiVoiceServerURL, logger),
	}
}
