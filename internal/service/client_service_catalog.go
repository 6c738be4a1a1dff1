package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/models"
)

type clientCatalogService struct {
	cache    store.ResponseCache
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	ttl      time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewClientCatalogService(cache store.ResponseCache, sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, ttl time.Duration, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{
		cache:    cache,
		sessions: sessions,
		adapter:  serverAdapter,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (c *clientCatalogService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return cachedRead(ctx, c, adapter.ProjectsPath, c.adapter.ListProjects)
}

func (c *clientCatalogService) GetProject(ctx context.Context, id string) (models.Project, error) {
	return cachedRead(ctx, c, adapter.ProjectPath(id), func(ctx context.Context) (models.Project, error) {
		return c.adapter.GetProject(ctx, id)
	})
}

func (c *clientCatalogService) CreateProject(ctx context.Context, request models.ProjectCreateRequest) (models.Project, error) {
	session, err := currentSession(ctx, c.sessions, c.now())
	if err != nil {
		return models.Project{}, err
	}

	project, err := c.adapter.CreateProject(ctx, session.Token, request)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}

	c.invalidate(ctx, adapter.ProjectsPath)
	return project, nil
}

func (c *clientCatalogService) UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (models.Project, error) {
	session, err := currentSession(ctx, c.sessions, c.now())
	if err != nil {
		return models.Project{}, err
	}

	project, err := c.adapter.UpdateProject(ctx, session.Token, id, request)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}

	c.invalidate(ctx, adapter.ProjectsPath)
	return project, nil
}

func (c *clientCatalogService) DeleteProject(ctx context.Context, id string) error {
	session, err := currentSession(ctx, c.sessions, c.now())
	if err != nil {
		return err
	}

	if err = c.adapter.DeleteProject(ctx, session.Token, id); err != nil {
		return mapAdapterError(err)
	}

	c.invalidate(ctx, adapter.ProjectsPath)
	return nil
}

func (c *clientCatalogService) ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error) {
	return cachedRead(ctx, c, adapter.PledgesQueryPath(filter), func(ctx context.Context) ([]models.Pledge, error) {
		return c.adapter.ListPledges(ctx, filter)
	})
}

func (c *clientCatalogService) CreatePledge(ctx context.Context, request models.PledgeCreateRequest) (models.Pledge, error) {
	var token string

	session, err := currentSession(ctx, c.sessions, c.now())
	switch {
	case err == nil:
		token = session.Token
	case errors.Is(err, ErrNotLoggedIn):
		// anonymous pledge
	default:
		return models.Pledge{}, err
	}

	pledge, err := c.adapter.CreatePledge(ctx, token, request)
	if err != nil {
		return models.Pledge{}, mapAdapterError(err)
	}

	c.invalidate(ctx, adapter.PledgesPath)
	return pledge, nil
}

func (c *clientCatalogService) Seed(ctx context.Context) (models.SeedResult, error) {
	result, err := c.adapter.Seed(ctx)
	if err != nil {
		return models.SeedResult{}, mapAdapterError(err)
	}

	c.invalidate(ctx, adapter.ProjectsPath)
	return result, nil
}

func (c *clientCatalogService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}

func (c *clientCatalogService) ClearCache(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing cache: %w", err)
	}

	return nil
}

// invalidate drops cached responses under prefix. A failing cache only
// costs freshness, so the error is logged.
func (c *clientCatalogService) invalidate(ctx context.Context, prefix string) {
	if err := c.cache.InvalidatePrefix(ctx, prefix); err != nil {
		c.logger.Err(err).Str("func", "clientCatalogService.invalidate").Str("prefix", prefix).Msg("error invalidating cache")
	}
}

// cachedRead serves key from the cache or performs fetch once and caches its result.
// An undecodable entry is dropped and refetched.
func cachedRead[T any](ctx context.Context, c *clientCatalogService, key string, fetch func(context.Context) (T, error)) (T, error) {
	var value T

	body, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		if err = json.Unmarshal(body, &value); err == nil {
			c.logger.Debug().Str("key", key).Msg("cache hit")
			return value, nil
		}
		c.logger.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		c.invalidate(ctx, key)
	case !errors.Is(err, store.ErrCacheMiss):
		c.logger.Err(err).Str("key", key).Msg("error reading cache")
	}

	value, err = fetch(ctx)
	if err != nil {
		var zero T
		return zero, mapAdapterError(err)
	}

	body, err = json.Marshal(value)
	if err != nil {
		c.logger.Err(err).Str("key", key).Msg("error encoding response for cache")
		return value, nil
	}
	if err = c.cache.Set(ctx, key, body, c.ttl); err != nil {
		c.logger.Err(err).Str("key", key).Msg("error writing cache")
	}

	return value, nil
}
