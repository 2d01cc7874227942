package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/amivoice-web/internal/logger"
	"github.com/MKhiriev/amivoice-web/internal/utils"
	"github.com/MKhiriev/amivoice-web/models"
)

const healthPath = "/api/health"

type httpHealthProbe struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPHealthProbe constructs an HTTP implementation of [HealthProbe]
// against the server at address. A missing scheme defaults to http.
//
// Returns [ErrInvalidAddress] if address is empty or cannot be parsed as a
// URL with a host.
func NewHTTPHealthProbe(address string, timeout time.Duration, logger *logger.Logger) (HealthProbe, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	return &httpHealthProbe{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Check implements [HealthProbe].
func (p *httpHealthProbe) Check(ctx context.Context) (models.HealthReport, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(healthPath)
	if err != nil {
		return models.HealthReport{}, fmt.Errorf("requesting %s: %w", healthPath, err)
	}

	if err := mapHTTPError(resp); err != nil {
		return models.HealthReport{}, err
	}

	var report models.HealthReport
	if err := json.Unmarshal(resp.Body(), &report); err != nil {
		return models.HealthReport{}, fmt.Errorf("%w: decoding health report: %v", ErrUnhealthy, err)
	}

	if report.Status != models.HealthStatusHealthy {
		return report, fmt.Errorf("%w: status %q", ErrUnhealthy, report.Status)
	}

	p.logger.Debug().
		Str("version", report.Version).
		Str("timestamp", report.Timestamp).
		Msg("server is healthy")

	return report, nil
}
