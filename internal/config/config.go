// Package config holds the layered runtime configuration for go-gh-heat.
package config

import (
	"time"
)

const (
	DefaultGraphQLURL = "https://api.github.com/graphql"
	DefaultProfileURL = "https://github.com/users/%s/contributions"
	DefaultUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	DefaultTimeout    = 30 * time.Second
	DefaultLogFile    = "~/.go-gh-heat/logs/app.log"
)

// Config contains process configuration.
type Config struct {
	// Token enables the authenticated GraphQL tier when non-empty.
	Token string `koanf:"token"`

	// GraphQLURL is the structured-query endpoint.
	GraphQLURL string `koanf:"graphql_url"`

	// ProfileURL is a format string with one %s for the username.
	ProfileURL string `koanf:"profile_url"`

	UserAgent string        `koanf:"user_agent"`
	Timeout   time.Duration `koanf:"timeout"`

	// Timezone decides which calendar day counts as today.
	Timezone string `koanf:"timezone"`

	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`

	// NoColor suppresses every ANSI escape sequence in the output.
	NoColor bool `koanf:"no_color"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		GraphQLURL: DefaultGraphQLURL,
		ProfileURL: DefaultProfileURL,
		UserAgent:  DefaultUserAgent,
		Timeout:    DefaultTimeout,
		Timezone:   "Local",
		LogLevel:   "info",
		LogFile:    DefaultLogFile,
	}
}

// HasToken reports whether the authenticated tier can be attempted.
func (c *Config) HasToken() bool {
	return c.Token != ""
}
