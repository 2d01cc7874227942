// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/amivoice-web/internal/store"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getIndex(w http.ResponseWriter, r *http.Request) error {
	body, err := h.services.AssetService.Index(r.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(body)
	return err
}

// getStatic serves a file below the static root. Conditional and range
// requests are handled by http.ServeContent using the file's mod time.
func (h *Handler) getStatic(w http.ResponseWriter, r *http.Request) error {
	name, err := staticAssetName(r)
	if err != nil {
		return err
	}

	asset, err := h.services.AssetService.Static(r.Context(), name)
	if err != nil {
		return err
	}
	defer asset.Content.Close()

	w.Header().Set("Content-Type", contentTypeByExtension(name))
	http.ServeContent(w, r, name, asset.ModTime, asset.Content)

	return nil
}

// staticAssetName returns the decoded wildcard part of a /static/ request.
// chi matches on the raw path when the request carried escapes, so the
// parameter is unescaped here to catch encoded traversal such as %2e%2e.
func staticAssetName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return name, nil
	}

	unescaped, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", store.ErrInvalidAssetPath, err)
	}

	return unescaped, nil
}
