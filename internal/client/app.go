package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/internal/store"
)

// App is one wired client: services plus the resources they hold open.
type App struct {
	Services *service.ClientServices
	Logger   *logger.Logger

	storages *store.ClientStorages
}

// NewApp builds an [App] from the environment, the optional JSON config file
// and overrides (usually command-line flags).
func NewApp(ctx context.Context, overrides config.ClientConfig) (*App, error) {
	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error getting client config: %w", err)
	}

	log := logger.NewClientLogger("green-pledge-cli")
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	baseURL, err := adapter.BaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	// one cache file may hold responses from several servers
	storages.Cache = store.NewNamespacedCache(storages.Cache, baseURL)

	log.Debug().
		Str("server", cfg.Adapter.HTTPAddress).
		Str("cache", cfg.Cache.DSN).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("client app initialized")

	return &App{
		Services: service.NewClientServices(storages, serverAdapter, cfg.Cache.TTL, log),
		Logger:   log,
		storages: storages,
	}, nil
}

// Close releases the local storage. It is safe on an App built without one.
func (a *App) Close() error {
	if a == nil || a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
