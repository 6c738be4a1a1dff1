// Package migrations embeds the goose schema migrations of every database
// the application owns: the server schema for PostgreSQL and SQLite, and the
// client-side cache and session schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// Target is a migration set together with the goose dialect it is written for.
type Target struct {
	dir     string
	dialect goose.Dialect
}

var (
	// Postgres is the server schema for PostgreSQL.
	Postgres = Target{dir: "postgres", dialect: goose.DialectPostgres}
	// SQLite is the server schema for SQLite.
	SQLite = Target{dir: "sqlite", dialect: goose.DialectSQLite3}
	// Client is the client response cache and session schema (SQLite).
	Client = Target{dir: "client", dialect: goose.DialectSQLite3}
)

var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration of target to db.
func Migrate(ctx context.Context, db *sql.DB, target Target) error {
	if db == nil {
		return ErrNilDB
	}

	fsys, err := fs.Sub(embedMigrations, target.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", target.dir, err)
	}

	provider, err := goose.NewProvider(target.dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
