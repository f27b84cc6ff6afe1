package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/fairpay/fairpay/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.APIBaseURL, convey.ShouldEqual, "http://localhost:8000")
			convey.So(cfg.RequestTimeout(), convey.ShouldEqual, 15*time.Second)
			convey.So(cfg.Language, convey.ShouldEqual, "en")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MaxShifts, convey.ShouldEqual, 1000)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a valid config", t, func() {
		cfg := config.New()

		cases := []struct {
			name   string
			mutate func(*config.Config)
			want   string
		}{
			{"empty addr", func(c *config.Config) { c.Addr = " " }, "addr must not be empty"},
			{"empty base url", func(c *config.Config) { c.APIBaseURL = "" }, "api_base_url must not be empty"},
			{"zero timeout", func(c *config.Config) { c.RequestTimeoutMS = 0 }, "request_timeout_ms must be positive"},
			{"zero max shifts", func(c *config.Config) { c.MaxShifts = 0 }, "max_shifts must be positive"},
			{"unknown language", func(c *config.Config) { c.Language = "fr" }, "unsupported language"},
			{"unknown log format", func(c *config.Config) { c.LogFormat = "xml" }, "log_format"},
			{"negative base rate", func(c *config.Config) {
				c.BaseRates = map[string]map[string]float64{"ride": {"metro": -1}}
			}, "base_rates.ride.metro"},
		}

		for _, tc := range cases {
			convey.Convey("When it has "+tc.name, func() {
				tc.mutate(cfg)
				err := cfg.Validate()

				convey.Convey("Then validation should fail", func() {
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
					convey.So(err.Error(), convey.ShouldContainSubstring, tc.want)
				})
			})
		}

		convey.Convey("When the language is upper case", func() {
			cfg.Language = "HI"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
