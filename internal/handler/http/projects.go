package http

import (
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgFailedToFetchProjects, app.MsgFailedToFetchProjects)
		return
	}

	writeJSON(w, r, projects, http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, app.MsgFailedToFetchProject, app.MsgFailedToFetchProject)
		return
	}

	writeJSON(w, r, project, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var request models.ProjectCreateRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, app.MsgInvalidProjectData, app.MsgFailedToCreateProject)
		return
	}

	project, err := h.services.ProjectService.CreateProject(r.Context(), request)
	if err != nil {
		writeError(w, r, err, app.MsgInvalidProjectData, app.MsgFailedToCreateProject)
		return
	}

	writeJSON(w, r, project, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var request models.ProjectUpdateRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, app.MsgInvalidProjectData, app.MsgFailedToUpdateProject)
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err, app.MsgInvalidProjectData, app.MsgFailedToUpdateProject)
		return
	}

	writeJSON(w, r, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, app.MsgFailedToDeleteProject, app.MsgFailedToDeleteProject)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
