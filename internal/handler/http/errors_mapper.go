package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/internal/validators"
	"github.com/MKhiriev/go-green-pledge/models"
)

var errorStatusMap = map[error]int{
	utils.ErrInvalidJSON:               http.StatusBadRequest,
	validators.ErrValidation:           http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForeignUserID:           http.StatusForbidden,

	store.ErrUsernameAlreadyExists:    http.StatusBadRequest,
	store.ErrEmailAlreadyExists:       http.StatusBadRequest,
	store.ErrProjectReferenceNotFound: http.StatusBadRequest,
	store.ErrUserReferenceNotFound:    http.StatusBadRequest,
	store.ErrProjectNotFound:          http.StatusNotFound,
	store.ErrProjectHasPledges:        http.StatusConflict,
}

// errorMessageMap holds sentinels whose message does not depend on the route.
var errorMessageMap = map[error]string{
	utils.ErrInvalidJSON:               app.MsgInvalidJSON,
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrForeignUserID:           app.MsgForeignUserID,
	store.ErrUsernameAlreadyExists:     app.MsgUsernameAlreadyExists,
	store.ErrEmailAlreadyExists:        app.MsgEmailAlreadyExists,
	store.ErrProjectNotFound:           app.MsgProjectNotFound,
	store.ErrProjectHasPledges:         app.MsgProjectHasPledges,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) (string, bool) {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return "", false
}

// writeError answers with the status mapped from err. Route-independent
// sentinels carry their own message; other 4xx answers use invalidMsg and
// 5xx answers use failMsg. Validation failures list their field details.
func writeError(w http.ResponseWriter, r *http.Request, err error, invalidMsg, failMsg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{Error: failMsg}
	if msg, ok := messageFromError(err); ok {
		response.Error = msg
	} else if status < http.StatusInternalServerError {
		response.Error = invalidMsg
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		response.Details = validationErr.Details()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(failMsg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(response.Error)
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
