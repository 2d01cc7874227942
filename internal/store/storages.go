package store

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/amivoice-web/internal/config"
	"github.com/MKhiriev/amivoice-web/internal/logger"
)

// Storages groups the storages used by the services.
type Storages struct {
	// StaticStorage serves files below the static root.
	StaticStorage AssetStorage

	// TemplateStorage holds the application shell document.
	TemplateStorage AssetStorage

	// IndexName is the name of the shell document inside TemplateStorage.
	IndexName string
}

// NewStorages builds the asset storages from the assets configuration.
// Missing directories are logged but are not fatal: the server still answers
// API requests, and asset requests fail with the regular error responses.
func NewStorages(cfg config.Assets, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	if info, err := os.Stat(cfg.StaticDir); err != nil || !info.IsDir() {
		logger.Warn().Str("static_dir", cfg.StaticDir).Msg("static root is not a readable directory")
	}
	if _, err := os.Stat(cfg.IndexFile); err != nil {
		logger.Warn().Str("index_file", cfg.IndexFile).Msg("application shell document is missing")
	}

	return &Storages{
		StaticStorage:   NewFileAssetStorage(cfg.StaticDir),
		TemplateStorage: NewFileAssetStorage(filepath.Dir(cfg.IndexFile)),
		IndexName:       filepath.ToSlash(filepath.Base(cfg.IndexFile)),
	}
}
