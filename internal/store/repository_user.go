package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works unchanged on PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. New accounts receive ids from ids.
func NewUserRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the generated id
// and creation time.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, insert models.UserInsert) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		ID:        r.ids.Generate(),
		Username:  insert.Username,
		Email:     insert.Email,
		Password:  insert.Password,
		CreatedAt: storeNow(),
	}

	query, args, err := r.insertUser(user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if violation := r.classify(err); violation.Kind == UniqueViolation {
			log.Debug().Err(err).Str("func", "*userRepository.CreateUser").Str("constraint", violation.Constraint).Msg("duplicate user")
			return models.User{}, duplicateUserError(violation.Constraint)
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// duplicateUserError maps the violated constraint ("users_email_key" on
// PostgreSQL, "users.email" on SQLite) to a sentinel.
func duplicateUserError(constraint string) error {
	if strings.Contains(constraint, "email") {
		return ErrEmailAlreadyExists
	}
	return ErrUsernameAlreadyExists
}

func (r *userRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.GetUser", sq.Eq{"id": id})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.GetUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.GetUserByEmail", sq.Eq{"email": email})
}

// findUser returns the single user matching where, or [ErrUserNotFound].
func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectUsers().Where(where).Limit(1).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
