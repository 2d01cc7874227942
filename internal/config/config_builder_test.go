package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/amivoice-web/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder_AppliesDefaults verifies that building with no
// sources yields a fully defaulted, valid config.
func TestBuild_EmptyBuilder_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, models.DefaultAmiVoiceServerURL, cfg.App.AmiVoiceServerURL)
	assert.Equal(t, DefaultSecretKey, cfg.App.SecretKey)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Address())
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.Server.IdleTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultStaticDir, cfg.Assets.StaticDir)
	assert.Equal(t, DefaultIndexFile, cfg.Assets.IndexFile)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones while zero fields leave them untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{AmiVoiceServerURL: "wss://env.test/"},
			Server: Server{Host: "0.0.0.0", Port: 7000},
		},
		&StructuredConfig{
			Server: Server{Port: 7001},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "wss://env.test/", cfg.App.AmiVoiceServerURL)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestBuild_FlaskDebugFoldsIntoDebug(t *testing.T) {
	tests := []struct {
		value     string
		wantDebug bool
	}{
		{value: "true", wantDebug: true},
		{value: "True", wantDebug: true},
		{value: "TRUE", wantDebug: true},
		{value: "false", wantDebug: false},
		{value: "False", wantDebug: false},
		{value: "yes", wantDebug: false},
		{value: "1", wantDebug: false},
		{value: "", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &StructuredConfig{App: App{FlaskDebug: tt.value}})

			cfg, err := b.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, cfg.App.Debug)
		})
	}
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "http scheme rejected",
			cfg:     StructuredConfig{App: App{AmiVoiceServerURL: "https://example.test/"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "url without host rejected",
			cfg:     StructuredConfig{App: App{AmiVoiceServerURL: "wss://"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "port out of range",
			cfg:     StructuredConfig{Server: Server{Port: 70000}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     StructuredConfig{Server: Server{ReadTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown log level",
			cfg:     StructuredConfig{Log: Log{Level: "chatty"}},
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			got, err := b.build()
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_AcceptsPlainWebSocketScheme(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{AmiVoiceServerURL: "ws://localhost:9000/v1/"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:9000/v1/", cfg.App.AmiVoiceServerURL)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithJSON_NoPath_NoConfigAdded(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFile_SetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	require.Error(t, b.err)
	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestWithFlags_InvalidFlag_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── LoadStructuredConfig ──────────────────────────────────────────────────────

// TestLoadStructuredConfig_EnvOverride verifies that AMIVOICE_SERVER_URL set
// in the environment reaches the final config.
func TestLoadStructuredConfig_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("AMIVOICE_SERVER_URL", "wss://example.test/")

	cfg, err := LoadStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "wss://example.test/", cfg.App.AmiVoiceServerURL)
}

// TestLoadStructuredConfig_EmptyURLFallsBackToDefault verifies that an empty
// AMIVOICE_SERVER_URL is treated as unset.
func TestLoadStructuredConfig_EmptyURLFallsBackToDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, models.DefaultAmiVoiceServerURL, cfg.App.AmiVoiceServerURL)
}

// TestLoadStructuredConfig_Precedence verifies env < flags < JSON.
func TestLoadStructuredConfig_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "10.0.0.1")
	t.Setenv("PORT", "6000")
	t.Setenv("LOG_LEVEL", "debug")

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"port": 6002},
	})

	cfg, err := LoadStructuredConfig([]string{
		"-port", "6001",
		"-log-level", "warn",
		"-c", jsonPath,
	})

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", cfg.Server.Host, "env value kept when no later source sets it")
	assert.Equal(t, 6002, cfg.Server.Port, "json wins over flags and env")
	assert.Equal(t, "warn", cfg.Log.Level, "flags win over env")
}

func TestLoadStructuredConfig_JSONPathFromEnv(t *testing.T) {
	clearEnv(t)
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"amivoice_server_url": "wss://from-json.test/"},
	})
	t.Setenv("CONFIG", jsonPath)

	cfg, err := LoadStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "wss://from-json.test/", cfg.App.AmiVoiceServerURL)
}

func TestLoadStructuredConfig_InvalidURLFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AMIVOICE_SERVER_URL", "http://not-a-websocket.test/")

	cfg, err := LoadStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
