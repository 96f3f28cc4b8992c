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
)

// EnvPrefix prefixes every environment override, e.g. PERFECTCIRCLE_SAMPLE_RATE.
const EnvPrefix = "PERFECTCIRCLE_"

// EnvConfigFile names the variable holding an optional YAML config path.
const EnvConfigFile = EnvPrefix + "CONFIG"

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML): path argument, or PERFECTCIRCLE_CONFIG when path is empty
//  3. env (prefix PERFECTCIRCLE_)
func Load(_ context.Context, path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// PERFECTCIRCLE_SAMPLE_RATE -> sample_rate (flat keys)
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
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

// Validate checks option ranges.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if !(c.SampleRate > 0 && c.SampleRate <= 1) {
		return fmt.Errorf("%w: sample_rate %v must be in (0, 1]", ErrInvalidConfig, c.SampleRate)
	}
	if !(c.ClosedTolerance > 0) {
		return fmt.Errorf("%w: closed_tolerance %v must be positive", ErrInvalidConfig, c.ClosedTolerance)
	}
	if c.StrokeWidth < MinStrokeWidth || c.StrokeWidth > MaxStrokeWidth {
		return fmt.Errorf("%w: stroke_width %v must be in [%d, %d]", ErrInvalidConfig, c.StrokeWidth, MinStrokeWidth, MaxStrokeWidth)
	}
	if c.StrokeHue < 0 || c.StrokeHue >= 360 {
		return fmt.Errorf("%w: stroke_hue %v must be in [0, 360)", ErrInvalidConfig, c.StrokeHue)
	}
	return nil
}
