package http

import (
	"net/http"

	"github.com/MKhiriev/amivoice-web/internal/utils"
)

func (h *Handler) getAppConfig(w http.ResponseWriter, r *http.Request) error {
	appConfig, err := h.services.AppInfoService.GetAppConfig(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, appConfig, http.StatusOK)
	return err
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) error {
	report, err := h.services.AppInfoService.GetHealth(r.Context())
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, report, http.StatusOK)
	return err
}
