package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fairpay/fairpay/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
				convey.So(cfg.RequestTimeoutMS, convey.ShouldEqual, 15_000)
				convey.So(cfg.BaseRates, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FAIRPAY_ADDR", ":8080")
			_ = os.Setenv("FAIRPAY_API_BASE_URL", "http://scoring.internal:9000")
			_ = os.Setenv("FAIRPAY_REQUEST_TIMEOUT_MS", "2500")
			_ = os.Setenv("FAIRPAY_LANGUAGE", "KN")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.APIBaseURL, convey.ShouldEqual, "http://scoring.internal:9000")
				convey.So(cfg.RequestTimeoutMS, convey.ShouldEqual, 2500)
				convey.So(cfg.Language, convey.ShouldEqual, "kn")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			tmpFile := createTempConfigFile(`
# scoring service
addr: ":9090"
log_format: json
max_shifts: 50
base_rates:
  ride:
    metro: 300
    tier2: 250
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FAIRPAY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should be merged with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.MaxShifts, convey.ShouldEqual, 50)
				convey.So(cfg.BaseRates["ride"]["metro"], convey.ShouldEqual, 300)
				convey.So(cfg.BaseRates["ride"]["tier2"], convey.ShouldEqual, 250)
				convey.So(cfg.Language, convey.ShouldEqual, "en")
			})
		})

		convey.Convey("When both a file and environment variables are set", func() {
			tmpFile := createTempConfigFile("addr: \":9090\"\nmax_shifts: 50\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FAIRPAY_CONFIG", tmpFile)
			_ = os.Setenv("FAIRPAY_ADDR", ":7070")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.MaxShifts, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When the YAML file is invalid", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FAIRPAY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("FAIRPAY_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})

		convey.Convey("When the file empties the addr", func() {
			tmpFile := createTempConfigFile("addr: \"\"\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("FAIRPAY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a numeric env var is not a number", func() {
			_ = os.Setenv("FAIRPAY_REQUEST_TIMEOUT_MS", "soon")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"FAIRPAY_CONFIG",
		"FAIRPAY_ADDR",
		"FAIRPAY_API_BASE_URL",
		"FAIRPAY_REQUEST_TIMEOUT_MS",
		"FAIRPAY_LANGUAGE",
		"FAIRPAY_LOG_LEVEL",
		"FAIRPAY_LOG_FORMAT",
		"FAIRPAY_MAX_SHIFTS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "fairpay-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
