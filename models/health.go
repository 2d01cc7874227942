// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatusHealthy is the only status a responding process reports.
const HealthStatusHealthy = "healthy"

// HealthReport is the liveness document returned by GET /api/health.
// It says the process can respond; it does not check the upstream
// transcription service.
type HealthReport struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
