package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quantfold/fedgauge/internal/domain/signal"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if FEDGAUGE_CONFIG is set
//  3. env (prefix FEDGAUGE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FEDGAUGE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FEDGAUGE_ADDR, FEDGAUGE_QUEUE_SIZE, ...
	// Map env keys like FEDGAUGE_QUEUE_SIZE -> queue_size (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("FEDGAUGE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fedgauge_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the engine cannot run on.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.RefreshQueueSize <= 0 {
		return fmt.Errorf("%w: queue_size must be positive", ErrInvalidConfig)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if c.HawkishThreshold <= c.DovishThreshold {
		return fmt.Errorf("%w: hawkish_threshold must exceed dovish_threshold", ErrInvalidConfig)
	}
	if c.NewsBlendWeight < 0 || c.NewsBlendWeight > 1 {
		return fmt.Errorf("%w: news_blend_weight must be in [0, 1]", ErrInvalidConfig)
	}
	if c.PolicyBlendWeight < 0 || c.PolicyBlendWeight > 1 {
		return fmt.Errorf("%w: policy_blend_weight must be in [0, 1]", ErrInvalidConfig)
	}
	if c.MaxEvidence < 0 {
		return fmt.Errorf("%w: max_evidence must not be negative", ErrInvalidConfig)
	}
	return validateActionBands(c.ActionBands)
}

// validateActionBands requires the bands to partition [-5, 5)
// contiguously so every score maps to exactly one action.
func validateActionBands(bands []signal.ActionBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: action_bands must not be empty", ErrInvalidConfig)
	}
	const lo, hi = -5.0, 5.0
	if bands[0].Min != lo {
		return fmt.Errorf("%w: action_bands must start at %.1f", ErrInvalidConfig, lo)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min != bands[i-1].Max {
			return fmt.Errorf("%w: action_bands gap between %.2f and %.2f",
				ErrInvalidConfig, bands[i-1].Max, bands[i].Min)
		}
	}
	if bands[len(bands)-1].Max != hi {
		return fmt.Errorf("%w: action_bands must end at %.1f", ErrInvalidConfig, hi)
	}
	return nil
}
