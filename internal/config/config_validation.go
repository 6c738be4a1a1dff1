// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultTokenIssuer     = "go-green-pledge"
	defaultTokenDuration   = 24 * time.Hour
	defaultBcryptCost      = 10
	defaultLogLevel        = "info"
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAuthRateLimit   = 5
	defaultAuthRateBurst   = 10

	defaultAdapterAddress = "http://localhost:8080"
	defaultAdapterTimeout = 10 * time.Second
	defaultCacheDSN       = "green-pledge-client.db"
	defaultCacheTTL       = 5 * time.Minute

	// bounds accepted by golang.org/x/crypto/bcrypt
	minBcryptCost = 4
	maxBcryptCost = 31
)

// setDefaults fills every unset optional field.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = defaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = defaultAuthRateLimit
	}
	if cfg.Server.AuthRateBurst == 0 {
		cfg.Server.AuthRateBurst = defaultAuthRateBurst
	}
}

// validate checks that the final merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost must be within [%d, %d]", ErrInvalidAppConfigs, minBcryptCost, maxBcryptCost)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}
	if cfg.Server.AuthRateLimit < 0 || cfg.Server.AuthRateBurst < 0 {
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) setDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if !strings.Contains(cfg.Adapter.HTTPAddress, "://") {
		cfg.Adapter.HTTPAddress = "http://" + cfg.Adapter.HTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Cache.DSN == "" {
		cfg.Cache.DSN = defaultCacheDSN
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Cache.DSN == "" || cfg.Cache.TTL < 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}
