package handler

import (
	"github.com/MKhiriev/amivoice-web/internal/config"
	"github.com/MKhiriev/amivoice-web/internal/handler/http"
	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.AppInfoService == nil || services.AssetService == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.CORS, logger),
	}, nil
}
