// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/amivoice-web/internal/service"
	"github.com/MKhiriev/amivoice-web/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "route not found", err: ErrRouteNotFound, want: http.StatusNotFound},
		{name: "method not allowed", err: ErrMethodNotAllowed, want: http.StatusNotFound},
		{name: "asset not found", err: store.ErrAssetNotFound, want: http.StatusNotFound},
		{name: "wrapped invalid path", err: fmt.Errorf("open: %w", store.ErrInvalidAssetPath), want: http.StatusNotFound},
		{name: "read failure", err: store.ErrReadingAsset, want: http.StatusInternalServerError},
		{name: "index unavailable", err: service.ErrIndexUnavailable, want: http.StatusInternalServerError},
		{name: "panic", err: ErrPanicRecovered, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("unexpected"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestHandle_WritesMappedError(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no error leaves response to handler",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "not found",
			err:        store.ErrAssetNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Page not found"}`,
		},
		{
			name:       "internal detail is hidden",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := h.handle(func(w http.ResponseWriter, r *http.Request) error {
				if tt.err != nil {
					return tt.err
				}
				w.WriteHeader(http.StatusNoContent)
				return nil
			})

			rr := httptest.NewRecorder()
			fn(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestWithRecovery(t *testing.T) {
	h := newTestHandler()

	t.Run("panic becomes 500 body", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(errors.New("nil map write"))
		})

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			h.withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/config", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		rr := httptest.NewRecorder()
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("no panic passes through", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		rr := httptest.NewRecorder()
		h.withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}
