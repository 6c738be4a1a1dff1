package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/internal/validators"
	"github.com/MKhiriev/go-green-pledge/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, app.MsgInvalidJSON, app.MsgRegistrationFailed)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err, app.MsgInvalidRegistrationData, app.MsgRegistrationFailed)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated, app.MsgRegistrationFailed)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, app.MsgInvalidJSON, app.MsgLoginFailed)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		// a login body with missing fields is answered like a wrong password
		if errors.Is(err, validators.ErrValidation) {
			logger.FromRequest(r).Debug().Err(err).Msg("login body failed validation")
			err = service.ErrInvalidCredentials
		}
		writeError(w, r, err, app.MsgInvalidCredentials, app.MsgLoginFailed)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	h.respondWithToken(w, r, user, http.StatusOK, app.MsgLoginFailed)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, app.MsgTokenIsExpiredOrInvalid, app.MsgInternalServerError)
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

// respondWithToken writes user as the body and a freshly signed token in
// the Authorization header.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int, failMsg string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, failMsg, failMsg)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, user, status)
}
