// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/MKhiriev/amivoice-web/models"
)

// Default values applied to fields left empty by every source.
const (
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 5000
	DefaultSecretKey       = "dev-secret-key-change-in-production"
	DefaultStaticDir       = "web/static"
	DefaultIndexFile       = "web/templates/index.html"
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// DefaultAllowedOrigins allows any origin, matching a permissive CORS setup.
var DefaultAllowedOrigins = []string{"*"}

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.AmiVoiceServerURL == "" {
		cfg.App.AmiVoiceServerURL = models.DefaultAmiVoiceServerURL
	}
	if cfg.App.SecretKey == "" {
		cfg.App.SecretKey = DefaultSecretKey
	}
	cfg.App.Debug = cfg.App.Debug || legacyDebugEnabled(cfg.App.FlaskDebug)

	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Assets.StaticDir == "" {
		cfg.Assets.StaticDir = DefaultStaticDir
	}
	if cfg.Assets.IndexFile == "" {
		cfg.Assets.IndexFile = DefaultIndexFile
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
}

// legacyDebugEnabled reports whether a FLASK_DEBUG value turns debug on.
// Only "true" in any letter case does; every other value means off.
func legacyDebugEnabled(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
