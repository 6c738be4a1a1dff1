package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one partial config together with where it came from.
type layer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder stacks partial configs from several sources. Layers are kept
// lowest priority first; a later layer overrides non-zero fields of earlier ones.
type configBuilder struct {
	layers []layer
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) push(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.push("env", cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := ParseFlags()
	return b.push("flags", cfg, err)
}

// withJSON loads the file named by the highest-priority layer that sets
// JSONFilePath and puts it underneath every other layer.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("json %s: %w", path, err))
		return b
	}

	b.layers = append([]layer{{source: "json", cfg: cfg}}, b.layers...)
	return b
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

// build merges every layer. Defaults and validation are left to the caller.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("error occurred during building config: %w", errors.Join(b.errs...))
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return merged, nil
}
