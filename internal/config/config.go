// Package config defines process configuration for the FairPay binaries.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and FAIRPAY_ env vars on top of the defaults.
// - External errors are wrapped with this package's sentinels.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// SupportedLanguages lists the UI language codes.
var SupportedLanguages = []string{"en", "hi", "kn"}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address of the scoring API, e.g. ":8000".
	Addr string `koanf:"addr"`

	// APIBaseURL is the scoring service root used by the client.
	APIBaseURL string `koanf:"api_base_url"`

	// RequestTimeoutMS bounds one scoring request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// Language is the initial UI language code.
	Language string `koanf:"language"`

	// MaxShifts caps the shifts accepted per request by the API.
	MaxShifts int `koanf:"max_shifts"`

	// BaseRates overrides fair ₹/hour rates keyed by gig type then city tier.
	BaseRates map[string]map[string]float64 `koanf:"base_rates"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":8000",
		APIBaseURL:       "http://localhost:8000",
		RequestTimeoutMS: 15_000,
		Language:         "en",
		MaxShifts:        1000,
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.APIBaseURL) == "":
		return fmt.Errorf("%w: api_base_url must not be empty", ErrInvalidConfig)
	case c.RequestTimeoutMS <= 0:
		return fmt.Errorf("%w: request_timeout_ms must be positive", ErrInvalidConfig)
	case c.MaxShifts <= 0:
		return fmt.Errorf("%w: max_shifts must be positive", ErrInvalidConfig)
	case !slices.Contains(SupportedLanguages, strings.ToLower(strings.TrimSpace(c.Language))):
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidConfig, c.Language)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json", ErrInvalidConfig)
	}
	for gig, tiers := range c.BaseRates {
		for tier, rate := range tiers {
			if rate <= 0 {
				return fmt.Errorf("%w: base_rates.%s.%s must be positive", ErrInvalidConfig, gig, tier)
			}
		}
	}
	return nil
}
