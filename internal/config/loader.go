package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GURTLE_CONFIG is set
//  3. env (prefix GURTLE_)
//  4. bare MONGO_URI / PORT, kept for deployments predating the prefix
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GURTLE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GURTLE_PORT, GURTLE_MONGO_URI, ...
	// Map env keys like GURTLE_MONGO_URI -> mongo_uri (flat keys).
	envProvider := env.Provider("GURTLE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gurtle_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	applyLegacyEnv(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, cfg.Port)
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("%w: mongo_uri must not be empty", ErrInvalidConfig)
	}
	if cfg.TopLimit < 1 {
		return nil, fmt.Errorf("%w: top_limit must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}

// applyLegacyEnv honors the unprefixed variables the service has always been
// deployed with. An unparseable PORT falls back to the default rather than
// failing startup.
func applyLegacyEnv(cfg *Config) {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.MongoURI = uri
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		} else {
			cfg.Port = DefaultPort
		}
	}
}

// Addr renders the listen address for the configured port.
func (c *Config) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}
