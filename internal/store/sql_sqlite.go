package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a SQLite database with foreign keys enforced.
//
// The pool is limited to a single connection: SQLite serializes writers
// anyway, and an in-memory database only lives as long as its connection.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	path, params := sqliteDSN(dsn)

	// db will be in file
	if err := createLocalDBDirIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", path+"?"+params)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// sqliteDSN strips the scheme prefix and returns the database path and the
// driver parameters, always including foreign key enforcement.
func sqliteDSN(dsn string) (path, params string) {
	path = strings.TrimSpace(dsn)
	for _, prefix := range []string{"sqlite3://", "sqlite://"} {
		if len(path) >= len(prefix) && strings.EqualFold(path[:len(prefix)], prefix) {
			path = path[len(prefix):]
			break
		}
	}

	path, params, _ = strings.Cut(path, "?")
	if !strings.Contains(params, "_foreign_keys") && !strings.Contains(params, "_fk") {
		if params != "" {
			params += "&"
		}
		params += "_foreign_keys=1"
	}
	if !strings.Contains(params, "_busy_timeout") {
		params += "&_busy_timeout=5000"
	}

	return path, params
}

func createLocalDBDirIfNotExists(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}
