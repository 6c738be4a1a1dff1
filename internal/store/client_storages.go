package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/migrations"
)

// memoryDSN selects a cache that lives only as long as the process.
const memoryDSN = "memory"

// ClientStorages groups all client-side storage into a single value that
// can be passed to the client service layer.
type ClientStorages struct {
	// Cache keeps raw API responses keyed by request path.
	Cache ResponseCache

	// Sessions keeps the identity the client is logged in as.
	Sessions SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite database at cfg.DSN (":memory:" when cfg.DSN is
//     "memory" or empty), creating the file if it does not yet exist.
//  2. Applies the client schema migrations.
//  3. Picks the response cache backend: process memory for "memory",
//     the SQLite database otherwise.
func NewClientStorages(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Msg("creating client storages...")

	dsn := cfg.DSN
	inMemory := dsn == "" || dsn == memoryDSN
	if inMemory {
		dsn = ":memory:"
	}

	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("client database connection error: %w", err)
	}

	if err = migrations.Migrate(ctx, db.DB, migrations.Client); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &ClientStorages{
		Sessions: NewSessionRepository(db),
		db:       db,
	}
	if inMemory {
		storages.Cache = NewMemoryCache()
	} else {
		storages.Cache = NewSQLiteCache(db)
	}

	return storages, nil
}

// Close releases the client database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
