// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppVersion is the version reported by the config and health endpoints.
// It is a fixed literal and is not derived from linker-injected build metadata.
const AppVersion = "1.0.0"

// DefaultAmiVoiceServerURL is the WebSocket endpoint handed to the browser
// client when AMIVOICE_SERVER_URL is not set.
const DefaultAmiVoiceServerURL = "wss://acp-api.amivoice.com/v1/nolog/"

// AppConfig is the runtime configuration advertised to the browser client
// by GET /api/config.
//
// It is rebuilt on every request and never stored.
type AppConfig struct {
	// AmiVoiceServerURL is the ws:// or wss:// endpoint of the upstream
	// transcription service. The browser connects to it directly.
	AmiVoiceServerURL string `json:"amivoice_server_url"`

	// SupportedGrammars lists the selectable recognition profiles in
	// display order. Never empty.
	SupportedGrammars []Grammar `json:"supported_grammars"`

	// Features maps a feature name to whether it is enabled.
	Features Features `json:"features"`

	// Version is the semantic version literal of the application.
	Version string `json:"version"`

	// BuildTime is an ISO-8601 timestamp computed when the document is
	// assembled, i.e. on every request.
	BuildTime string `json:"build_time"`
}

// Grammar is a named recognition profile the client can forward to the
// transcription service.
type Grammar struct {
	// Value is the grammar file name understood by the upstream service
	// (e.g. "-a-general"). Unique within the catalog.
	Value string `json:"value"`

	// Label is the human-readable name shown in the grammar selector.
	Label string `json:"label"`
}

// Features is the feature-flag map exposed to the client.
type Features map[string]bool

// Feature names understood by the client.
const (
	FeatureRealTimeTranscription = "real_time_transcription"
	FeatureInterimResults        = "interim_results"
	FeatureAudioVisualization    = "audio_visualization"
	FeatureSessionManagement     = "session_management"
)

// SupportedGrammars returns the fixed grammar catalog in display order.
// A fresh slice is returned on every call.
func SupportedGrammars() []Grammar {
	return []Grammar{
		{Value: "-a-general", Label: "汎用（日常会話）"},
		{Value: "-a-business", Label: "ビジネス"},
		{Value: "-a-medical", Label: "医療"},
		{Value: "-a-lecture", Label: "講演・プレゼン"},
	}
}

// DefaultFeatures returns the feature-flag map with every feature enabled.
// A fresh map is returned on every call.
func DefaultFeatures() Features {
	return Features{
		FeatureRealTimeTranscription: true,
		FeatureInterimResults:        true,
		FeatureAudioVisualization:    true,
		FeatureSessionManagement:     true,
	}
}
