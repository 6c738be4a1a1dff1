package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and checks that the token subject is
// still a registered user. On success the user's ID is stored in the request
// context (see [utils.WithUserID]).
//
// A missing header is answered with 401 "Authentication required"; a bad
// token or an unknown subject with 401 "Token is expired or invalid".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromRequest(r).Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeJSON(w, r, models.ErrorResponse{Error: app.MsgAuthenticationRequired}, http.StatusUnauthorized)
			return
		}

		ctx, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeError(w, r, err, app.MsgTokenIsExpiredOrInvalid, app.MsgInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth authenticates the caller when an "Authorization" header is
// present and lets anonymous requests through untouched. A header carrying a
// bad token is still rejected.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := h.authenticate(r.Context(), authHeader)
		if err != nil {
			writeError(w, r, err, app.MsgTokenIsExpiredOrInvalid, app.MsgInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate resolves the header to a registered user and returns ctx
// carrying the user's id. Every rejection wraps service.ErrTokenIsExpiredOrInvalid.
func (h *Handler) authenticate(ctx context.Context, authHeader string) (context.Context, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return ctx, errors.Join(service.ErrTokenIsExpiredOrInvalid, err)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return ctx, errors.Join(service.ErrTokenIsExpiredOrInvalid, err)
	}

	if _, err = h.services.AuthService.GetUser(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ctx, errors.Join(service.ErrTokenIsExpiredOrInvalid, err)
		}
		return ctx, err
	}

	return utils.WithUserID(ctx, token.UserID), nil
}
