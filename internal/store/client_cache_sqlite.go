package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

const responseCacheTable = "response_cache"

// sqliteCache is a [ResponseCache] persisted in the client SQLite database,
// so cached responses survive between CLI invocations.
type sqliteCache struct {
	*DB
	now func() time.Time
}

// NewSQLiteCache returns a [ResponseCache] stored in db, which must carry
// the client schema.
func NewSQLiteCache(db *DB) ResponseCache {
	return &sqliteCache{DB: db, now: time.Now}
}

func (c *sqliteCache) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := c.builder().
		Select("body", "expires_at").
		From(responseCacheTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		body      []byte
		expiresAt time.Time
	)
	err = c.QueryRowContext(ctx, query, args...).Scan(&body, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !c.now().Before(expiresAt) {
		if delErr := c.delete(ctx, sq.Eq{"key": key}); delErr != nil {
			logger.FromContext(ctx).Err(delErr).Str("func", "sqliteCache.Get").Msg("failed to drop expired entry")
		}
		return nil, ErrCacheMiss
	}

	return body, nil
}

func (c *sqliteCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	query, args, err := c.builder().
		Insert(responseCacheTable).
		Columns("key", "body", "expires_at").
		Values(key, body, c.now().UTC().Add(ttl)).
		Suffix("ON CONFLICT (key) DO UPDATE SET body = excluded.body, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *sqliteCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	// substr counts characters, so the prefix length is measured in runes
	return c.delete(ctx, sq.Or{
		sq.Eq{"key": prefix},
		sq.Expr("substr(key, 1, ?) IN (?, ?)", utf8.RuneCountInString(prefix)+1, prefix+"/", prefix+"?"),
	})
}

func (c *sqliteCache) Clear(ctx context.Context) error {
	return c.delete(ctx, nil)
}

func (c *sqliteCache) delete(ctx context.Context, where sq.Sqlizer) error {
	builder := c.builder().Delete(responseCacheTable)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
