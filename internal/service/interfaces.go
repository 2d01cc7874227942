package service

import (
	"context"

	"github.com/MKhiriev/amivoice-web/internal/store"
	"github.com/MKhiriev/amivoice-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService builds the documents of the configuration and health API.
// Every call returns a freshly assembled value.
type AppInfoService interface {
	// GetAppConfig returns the configuration advertised to the client.
	GetAppConfig(ctx context.Context) (models.AppConfig, error)

	// GetHealth returns the liveness report.
	GetHealth(ctx context.Context) (models.HealthReport, error)
}

// AssetService serves the application shell and static files.
type AssetService interface {
	// Index returns the rendered application shell document.
	Index(ctx context.Context) ([]byte, error)

	// Static opens a file below the static root. The caller must close
	// the returned asset's Content.
	Static(ctx context.Context, name string) (*store.Asset, error)
}
