package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/amivoice-web/internal/store"
	"github.com/MKhiriev/amivoice-web/models"
)

// errorStatusMap lists every error answered with something other than 500.
var errorStatusMap = map[error]int{
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusNotFound,

	store.ErrAssetNotFound:    http.StatusNotFound,
	store.ErrInvalidAssetPath: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponseFor returns the fixed client-facing body for status.
func errorResponseFor(status int) models.ErrorResponse {
	if status == http.StatusNotFound {
		return models.ErrorResponse{Error: models.ErrorMessageNotFound}
	}
	return models.ErrorResponse{Error: models.ErrorMessageInternal}
}
