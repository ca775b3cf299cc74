package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "GHHEAT_"
	envConfigFile = "GHHEAT_CONFIG"
	envToken      = "GITHUB_TOKEN"
	envNoColor    = "NO_COLOR"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) from path, or GHHEAT_CONFIG when path is empty
//  3. env (prefix GHHEAT_)
//
// GITHUB_TOKEN is used when no token was configured, and a non-empty
// NO_COLOR forces NoColor.
func Load(_ context.Context, path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// GHHEAT_GRAPHQL_URL -> graphql_url; underscores are kept to match koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.Token == "" {
		cfg.Token = strings.TrimSpace(os.Getenv(envToken))
	}
	if os.Getenv(envNoColor) != "" {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the fetch tiers depend on.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	if err := validateURL(c.GraphQLURL); err != nil {
		return fmt.Errorf("%w: graphql_url: %v", ErrInvalidConfig, err)
	}
	if strings.Count(c.ProfileURL, "%s") != 1 {
		return fmt.Errorf("%w: profile_url must contain exactly one %%s, got %q", ErrInvalidConfig, c.ProfileURL)
	}
	if err := validateURL(fmt.Sprintf(c.ProfileURL, "user")); err != nil {
		return fmt.Errorf("%w: profile_url: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
