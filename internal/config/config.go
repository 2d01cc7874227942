// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// transcription web front-end. It is built once at startup from environment
// variables, command-line flags and an optional JSON file, and is passed by
// value to every component that needs a part of it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the values advertised to the browser client and the
	// process-wide behaviour switches.
	App App

	// Server holds the listener address and timeouts.
	Server Server

	// Assets holds the locations of the application shell and static files.
	Assets Assets `envPrefix:"ASSETS_"`

	// Log holds diagnostic log sink settings.
	Log Log

	// CORS holds cross-origin settings for browser clients served from
	// another origin.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AmiVoiceServerURL is the WebSocket endpoint handed to the client.
	// Env: AMIVOICE_SERVER_URL
	AmiVoiceServerURL string `env:"AMIVOICE_SERVER_URL"`

	// SecretKey is reserved for session signing. No session is created by
	// this server, so the value is only carried. It is never logged.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"-"`

	// Debug switches the log sink to human-readable debug output.
	// Env: DEBUG
	Debug bool `env:"DEBUG"`

	// FlaskDebug is the legacy name of Debug, still honoured for existing
	// deployments. Only "true" in any letter case enables it; any other value
	// means off. It is folded into Debug when defaults are applied.
	// Env: FLASK_DEBUG
	FlaskDebug string `env:"FLASK_DEBUG"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// Host is the interface the listener binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the listener binds to.
	// Env: PORT
	Port int `env:"PORT"`

	// ReadTimeout is the maximum duration for reading an entire request.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT"`

	// WriteTimeout is the maximum duration before timing out writes of
	// the response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Address returns the listener address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Assets holds file-system locations of the served documents.
type Assets struct {
	// StaticDir is the static root served under /static/.
	// Env: ASSETS_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// IndexFile is the application shell document served at /.
	// Env: ASSETS_INDEX_FILE
	IndexFile string `env:"INDEX_FILE"`
}

// Log holds diagnostic log sink settings.
type Log struct {
	// Level is the minimum level written to the sink. Python-style names
	// such as "INFO" or "WARNING" are accepted.
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// CORS holds cross-origin resource sharing settings.
type CORS struct {
	// AllowedOrigins lists origins allowed to call the API.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from the process environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig loads the configuration using args as command-line
// flags. Sources are applied in the following order, later non-zero values
// winning:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields still empty after merging, then the result
// is validated.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
