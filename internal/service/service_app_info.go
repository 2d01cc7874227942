package service

import (
	"context"
	"time"

	"github.com/MKhiriev/amivoice-web/internal/config"
	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/models"
)

type appInfoService struct {
	amiVoiceServerURL string
	version           string

	now func() time.Time
}

// NewAppInfoService constructs an [AppInfoService] from the application
// configuration. An empty server URL falls back to
// [models.DefaultAmiVoiceServerURL].
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	serverURL := cfg.AmiVoiceServerURL
	if serverURL == "" {
		serverURL = models.DefaultAmiVoiceServerURL
	}

	logger.Debug().
		Str("amivoice_server_url", serverURL).
		Str("version", models.AppVersion).
		Msg("app info service created")

	return &appInfoService{
		amiVoiceServerURL: serverURL,
		version:           models.AppVersion,
		now:               time.Now,
	}
}

// GetAppConfig assembles the client configuration. BuildTime is the current
// time on every call, not the time the binary was built.
func (s *appInfoService) GetAppConfig(ctx context.Context) (models.AppConfig, error) {
	if err := ctx.Err(); err != nil {
		return models.AppConfig{}, err
	}

	return models.AppConfig{
		AmiVoiceServerURL: s.amiVoiceServerURL,
		SupportedGrammars: models.SupportedGrammars(),
		Features:          models.DefaultFeatures(),
		Version:           s.version,
		BuildTime:         models.FormatTimestamp(s.now()),
	}, nil
}

// GetHealth reports that the process is able to respond. It does not check
// the upstream transcription service.
func (s *appInfoService) GetHealth(ctx context.Context) (models.HealthReport, error) {
	if err := ctx.Err(); err != nil {
		return models.HealthReport{}, err
	}

	return models.HealthReport{
		Status:    models.HealthStatusHealthy,
		Timestamp: models.FormatTimestamp(s.now()),
		Version:   s.version,
	}, nil
}
