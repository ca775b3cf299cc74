package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/penwyp/go-gh-heat/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars(t)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.GraphQLURL, convey.ShouldEqual, config.DefaultGraphQLURL)
				convey.So(cfg.ProfileURL, convey.ShouldEqual, config.DefaultProfileURL)
				convey.So(cfg.Timeout, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.Timezone, convey.ShouldEqual, "Local")
				convey.So(cfg.HasToken(), convey.ShouldBeFalse)
				convey.So(cfg.NoColor, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			t.Setenv("GHHEAT_TOKEN", "ghp_env")
			t.Setenv("GHHEAT_TIMEOUT", "5s")
			t.Setenv("GHHEAT_GRAPHQL_URL", "http://127.0.0.1:8080/graphql")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Token, convey.ShouldEqual, "ghp_env")
				convey.So(cfg.Timeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.GraphQLURL, convey.ShouldEqual, "http://127.0.0.1:8080/graphql")
			})
		})

		convey.Convey("When only GITHUB_TOKEN is set", func() {
			t.Setenv("GITHUB_TOKEN", " ghp_conventional ")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should be used as the token", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Token, convey.ShouldEqual, "ghp_conventional")
				convey.So(cfg.HasToken(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When both GHHEAT_TOKEN and GITHUB_TOKEN are set", func() {
			t.Setenv("GITHUB_TOKEN", "ghp_conventional")
			t.Setenv("GHHEAT_TOKEN", "ghp_specific")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then the prefixed variable wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Token, convey.ShouldEqual, "ghp_specific")
			})
		})

		convey.Convey("When NO_COLOR is set", func() {
			t.Setenv("NO_COLOR", "1")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then color is disabled", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.NoColor, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := writeConfigFile(t, `
timeout: 12s
timezone: UTC
profile_url: "http://localhost:9000/%s/calendar"
log_level: debug
`)

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then it should load from the file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Timeout, convey.ShouldEqual, 12*time.Second)
				convey.So(cfg.Timezone, convey.ShouldEqual, "UTC")
				convey.So(cfg.ProfileURL, convey.ShouldEqual, "http://localhost:9000/%s/calendar")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.GraphQLURL, convey.ShouldEqual, config.DefaultGraphQLURL)
			})
		})

		convey.Convey("When the file comes from GHHEAT_CONFIG and env overrides it", func() {
			path := writeConfigFile(t, "timezone: UTC\ntimeout: 12s\n")
			t.Setenv("GHHEAT_CONFIG", path)
			t.Setenv("GHHEAT_TIMEZONE", "Asia/Tokyo")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Timezone, convey.ShouldEqual, "Asia/Tokyo")
				convey.So(cfg.Timeout, convey.ShouldEqual, 12*time.Second)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			path := writeConfigFile(t, `invalid: yaml: content: [`)

			cfg, err := config.Load(ctx, path)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			cfg, err := config.Load(ctx, "/non/existent/file.yaml")

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the profile URL has no username placeholder", func() {
			t.Setenv("GHHEAT_PROFILE_URL", "https://github.com/contributions")

			cfg, err := config.Load(ctx, "")

			convey.Convey("Then it should return a validation error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "profile_url")
			})
		})

		convey.Convey("When the timeout is not positive", func() {
			t.Setenv("GHHEAT_TIMEOUT", "0s")

			_, err := config.Load(ctx, "")

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
			convey.So(cfg.LogFile, convey.ShouldEqual, config.DefaultLogFile)
			convey.So(cfg.UserAgent, convey.ShouldNotBeEmpty)
		})
	})
}

func clearConfigEnvVars(t *testing.T) {
	for _, key := range []string{
		"GHHEAT_CONFIG", "GHHEAT_TOKEN", "GHHEAT_TIMEOUT", "GHHEAT_GRAPHQL_URL",
		"GHHEAT_PROFILE_URL", "GHHEAT_TIMEZONE", "GITHUB_TOKEN", "NO_COLOR",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
