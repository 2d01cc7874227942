// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for talking to a running instance of the
// web front-end over HTTP.
//
// The primary abstraction is [HealthProbe], used by the healthcheck command
// to decide whether a server is live. Failures are reported through the
// sentinel values in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/amivoice-web/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// HealthProbe checks the liveness endpoint of a server.
type HealthProbe interface {
	// Check requests the health report. It returns [ErrUnhealthy] when the
	// server answers with a non-2xx status, an unreadable body, or a status
	// other than "healthy". Transport failures are returned as-is.
	Check(ctx context.Context) (models.HealthReport, error)
}
