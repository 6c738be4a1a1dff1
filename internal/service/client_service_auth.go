package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.Session, error) {
	user, token, err := a.adapter.Register(ctx, request)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.saveSession(ctx, user, token)
}

func (a *clientAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Session, error) {
	user, token, err := a.adapter.Login(ctx, request)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.saveSession(ctx, user, token)
}

func (a *clientAuthService) saveSession(ctx context.Context, user models.User, token string) (models.Session, error) {
	session := models.Session{User: user, Token: token}

	// the server verifies the token; here only its expiry is read
	if _, expiresAt, err := utils.ParseUnverifiedClaims(token); err == nil {
		session.ExpiresAt = expiresAt
	} else {
		a.logger.Warn().Err(err).Msg("could not read token expiry")
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (a *clientAuthService) WhoAmI(ctx context.Context) (models.User, error) {
	session, err := currentSession(ctx, a.sessions, a.now())
	if err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.Me(ctx, session.Token)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrTokenIsExpiredOrInvalid) {
			if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
				a.logger.Err(delErr).Str("func", "clientAuthService.WhoAmI").Msg("error dropping rejected session")
			}
		}
		return models.User{}, err
	}

	session.User = user
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.User{}, fmt.Errorf("error saving session: %w", err)
	}

	return user, nil
}

// currentSession returns the stored session if it exists and has not expired.
func currentSession(ctx context.Context, sessions store.SessionRepository, now time.Time) (models.Session, error) {
	session, err := sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}
	if session.Expired(now) {
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}
