package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
)

// Storages groups the server repositories. It implements [Storage].
type Storages struct {
	UserRepository
	ProjectRepository
	PledgeRepository

	db *DB
}

var _ Storage = (*Storages)(nil)

// NewStorages opens the database selected by cfg.DSN, applies pending
// migrations and wires every repository to it.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, utils.NewUUIDGenerator(), log), nil
}

// NewStoragesFromDB wires the repositories to an already opened and migrated db.
func NewStoragesFromDB(db *DB, ids utils.IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, ids, log),
		ProjectRepository: NewProjectRepository(db, ids, log),
		PledgeRepository:  NewPledgeRepository(db, ids, log),
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
