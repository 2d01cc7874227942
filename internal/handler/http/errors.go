// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrRouteNotFound is reported for requests that match no route.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported for a known path requested with an
	// unsupported method. It is answered exactly like ErrRouteNotFound.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrPanicRecovered wraps a value recovered from a panicking handler.
	ErrPanicRecovered = errors.New("panic recovered")
)
