package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-green-pledge/models"
	sq "github.com/Masterminds/squirrel"
)

const sessionTable = "session"

// sessionRepository keeps the single current session row of the client database.
type sessionRepository struct {
	*DB
}

// NewSessionRepository returns a [SessionRepository] stored in db, which
// must carry the client schema.
func NewSessionRepository(db *DB) SessionRepository {
	return &sessionRepository{DB: db}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	var expiresAt *time.Time
	if !session.ExpiresAt.IsZero() {
		at := session.ExpiresAt.UTC()
		expiresAt = &at
	}

	query, args, err := s.builder().
		Insert(sessionTable).
		Columns("id", "user_id", "username", "email", "token", "expires_at", "saved_at").
		Values(1, session.User.ID, session.User.Username, session.User.Email, session.Token, expiresAt, time.Now().UTC()).
		Suffix(`ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id, username = excluded.username,
			email = excluded.email, token = excluded.token, expires_at = excluded.expires_at, saved_at = excluded.saved_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	query, args, err := s.builder().
		Select("user_id", "username", "email", "token", "expires_at").
		From(sessionTable).
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session   models.Session
		expiresAt sql.NullTime
	)
	err = s.QueryRowContext(ctx, query, args...).Scan(
		&session.User.ID,
		&session.User.Username,
		&session.User.Email,
		&session.Token,
		&expiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time.UTC()
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := s.builder().Delete(sessionTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
