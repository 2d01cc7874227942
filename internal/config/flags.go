package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the command-line flags in args into a partial
// [StructuredConfig]. Flags left unset produce zero values so that they do
// not override other sources during merging.
//
// Flags:
//
//	-host listener host
//	-port listener port
//	-amivoice-url transcription WebSocket endpoint handed to the client
//	-static-dir static assets root
//	-index-file application shell document
//	-log-level log level (debug, info, warn, error)
//	-debug human-readable debug logging
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var host string
	var port int
	var amiVoiceURL string
	var staticDir string
	var indexFile string
	var logLevel string
	var debug bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("amivoice-web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&host, "host", "", "Listener host")
	fs.IntVar(&port, "port", 0, "Listener port")
	fs.StringVar(&amiVoiceURL, "amivoice-url", "", "Transcription WebSocket endpoint")
	fs.StringVar(&staticDir, "static-dir", "", "Static assets root")
	fs.StringVar(&indexFile, "index-file", "", "Application shell document")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&debug, "debug", false, "Debug logging")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AmiVoiceServerURL: amiVoiceURL,
			Debug:             debug,
		},
		Server: Server{
			Host: host,
			Port: port,
		},
		Assets: Assets{
			StaticDir: staticDir,
			IndexFile: indexFile,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
