package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps a *sql.DB together with the backend specific pieces every
// repository needs: the placeholder format for query building and the
// driver error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to the database selected by the DSN scheme:
//
//	postgres://..., postgresql://..., "host=... dbname=..."  → PostgreSQL (pgx)
//	sqlite://path, sqlite3://path, file:path, *.db, :memory: → SQLite
func Open(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch dialectFromDSN(dsn) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func dialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DialectPostgres
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "sqlite3://"),
		strings.HasPrefix(lower, "file:"), lower == ":memory:",
		strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"):
		return DialectSQLite
	}

	return ""
}

// Dialect reports the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations of the server schema.
func (db *DB) Migrate(ctx context.Context) error {
	target := migrations.Postgres
	if db.dialect == DialectSQLite {
		target = migrations.SQLite
	}

	return migrations.Migrate(ctx, db.DB, target)
}

// builder returns a squirrel statement builder using the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) Violation {
	if db.errorClassificator == nil {
		return Violation{}
	}
	return db.errorClassificator.Classify(err)
}

// withinTx runs fn inside a transaction, committing when fn returns nil
// and rolling back otherwise.
func (db *DB) withinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
