package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Prefixes come from the
// envPrefix tags on [StructuredConfig]: APP_, STORAGE_DB_, SERVER_, ADAPTER_
// and CACHE_.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
