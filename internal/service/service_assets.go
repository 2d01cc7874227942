// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/internal/store"
	"github.com/MKhiriev/amivoice-web/models"
)

// indexData is the data available to the application shell template.
type indexData struct {
	Title             string
	Version           string
	AmiVoiceServerURL string
}

const appTitle = "AmiVoice Real-time Transcription"

type assetService struct {
	staticStorage   store.AssetStorage
	templateStorage store.AssetStorage
	indexName       string

	data indexData

	logger *logger.Logger
}

// NewAssetService constructs an [AssetService] on top of the given storages.
func NewAssetService(storages *store.Storages, amiVoiceServerURL string, logger *logger.Logger) AssetService {
	return &assetService{
		staticStorage:   storages.StaticStorage,
		templateStorage: storages.TemplateStorage,
		indexName:       storages.IndexName,
		data: indexData{
			Title:             appTitle,
			Version:           models.AppVersion,
			AmiVoiceServerURL: amiVoiceServerURL,
		},
		logger: logger,
	}
}

// Index reads and renders the application shell. The document is read on
// every call so edits on disk are picked up without a restart.
//
// Any failure is returned as [ErrIndexUnavailable].
func (s *assetService) Index(ctx context.Context) ([]byte, error) {
	body, err := s.renderIndex(ctx)
	if err != nil {
		s.logger.Debug().Err(err).
			Str("index", s.indexName).
			Msg("application shell could not be rendered")
		return nil, err
	}

	return body, nil
}

func (s *assetService) renderIndex(ctx context.Context) ([]byte, error) {
	raw, err := s.templateStorage.ReadFile(ctx, s.indexName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	tmpl, err := template.New(s.indexName).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %v", ErrIndexUnavailable, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, s.data); err != nil {
		return nil, fmt.Errorf("%w: executing template: %v", ErrIndexUnavailable, err)
	}

	return buf.Bytes(), nil
}

// Static opens name below the static root. Storage errors are returned
// unchanged so that callers can tell missing files from I/O failures.
func (s *assetService) Static(ctx context.Context, name string) (*store.Asset, error) {
	return s.staticStorage.Open(ctx, name)
}
