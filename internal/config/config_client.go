package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCache holds response cache and session storage settings.
type ClientCache struct {
	// DSN is the SQLite file path, or "memory" for a process-local cache.
	DSN string
	// TTL is the lifetime of a cached response.
	TTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Cache   ClientCache
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration.
//
// The base is loaded from environment variables and the optional JSON file
// (command-line parsing belongs to the CLI). Non-zero fields of overrides,
// typically the CLI's own flags, take precedence over the base.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Cache: ClientCache{
			DSN: cfg.Cache.DSN,
			TTL: cfg.Cache.TTL,
		},
		LogLevel: cfg.App.LogLevel,
	}

	if err = mergo.Merge(clientCfg, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging client overrides: %w", err)
	}

	clientCfg.setDefaults()
	return clientCfg, clientCfg.validate()
}
