package http

import (
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
)

func (h *Handler) listPledges(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.PledgeFilter{
		UserID:    query.Get("userId"),
		ProjectID: query.Get("projectId"),
	}

	pledges, err := h.services.PledgeService.ListPledges(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, app.MsgFailedToFetchPledges, app.MsgFailedToFetchPledges)
		return
	}

	writeJSON(w, r, pledges, http.StatusOK)
}

// createPledge records a pledge. The caller, if any, was put in the
// context by optionalAuth.
func (h *Handler) createPledge(w http.ResponseWriter, r *http.Request) {
	var request models.PledgeCreateRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, app.MsgInvalidPledgeData, app.MsgInternalServerError)
		return
	}

	pledge, err := h.services.PledgeService.CreatePledge(r.Context(), request)
	if err != nil {
		writeError(w, r, err, app.MsgInvalidPledgeData, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, pledge, http.StatusCreated)
}
