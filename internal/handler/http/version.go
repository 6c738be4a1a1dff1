package http

import (
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/app"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SeedService.Seed(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgFailedToSeed, app.MsgFailedToSeed)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}
