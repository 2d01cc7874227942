// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/internal/utils"
)

// appHandler is a route handler that reports failures instead of writing
// error responses itself. It must not write anything before returning an
// error.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts an appHandler to http.HandlerFunc, sending every returned
// error through writeError.
func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// writeError is the single place where errors become responses. The
// detail of a 500 is logged and never sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Msg("internal error")
	} else {
		log.Debug().Err(err).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Msg("request rejected")
	}

	writeErrorResponse(w, status)
}

func writeErrorResponse(w http.ResponseWriter, status int) {
	// the body is a fixed two-field struct, marshaling cannot fail
	_, _ = utils.WriteJSON(w, errorResponseFor(status), status)
}

// notFound is the router's NotFound handler.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
