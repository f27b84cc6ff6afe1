package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fairpay/fairpay/internal/config"
	"github.com/fairpay/fairpay/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

const twoShifts = `{"shifts":[
	{"hours_online":8,"tasks_completed":14,"earnings":3200,"bonuses_received":400,"bonuses_expected":500,"deductions":150},
	{"hours_online":6,"tasks_completed":11,"earnings":2400,"bonuses_received":250,"bonuses_expected":300,"deductions":120}
]}`

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When configuration comes from the environment", func() {
			_ = os.Setenv("FAIRPAY_ADDR", ":9090")
			_ = os.Setenv("FAIRPAY_MAX_SHIFTS", "1")
			defer func() {
				_ = os.Unsetenv("FAIRPAY_ADDR")
				_ = os.Unsetenv("FAIRPAY_MAX_SHIFTS")
			}()

			cfg, err := config.Load(context.Background())

			convey.Convey("Then it should be applied to the server", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")

				h := newHandler(context.Background(), cfg, logger.Nop())
				req := httptest.NewRequest(http.MethodPost, "/analyze-form", bytes.NewBufferString(twoShifts))
				w := httptest.NewRecorder()
				h.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusBadRequest)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "Too many shifts")
			})
		})

		convey.Convey("When the address is empty", func() {
			_ = os.Setenv("FAIRPAY_ADDR", " ")
			defer func() { _ = os.Unsetenv("FAIRPAY_ADDR") }()

			cfg, err := config.Load(context.Background())

			convey.Convey("Then configuration loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the handler built from default configuration", t, func() {
		h := newHandler(context.Background(), config.New(), logger.Nop())

		serve := func(method, path, body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			return w
		}

		convey.Convey("Then every route should be mounted", func() {
			convey.So(serve(http.MethodGet, "/health", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodGet, "/metrics", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodGet, "/api-docs", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodGet, "/openapi.yaml", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodPost, "/analyze-form", twoShifts).Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodPost, "/generate-appeal-form", twoShifts).Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodPost, "/analyze-offer", `{"gigType":"ride","hoursOnline":10,"earnings":3000}`).Code,
				convey.ShouldEqual, http.StatusOK)
		})
	})

	convey.Convey("Given base rate overrides", t, func() {
		cfg := config.New()
		cfg.BaseRates = map[string]map[string]float64{"ride": {"metro": 300}}
		h := newHandler(context.Background(), cfg, logger.Nop())

		convey.Convey("Then the offer route should use them", func() {
			req := httptest.NewRequest(http.MethodPost, "/analyze-offer",
				bytes.NewBufferString(`{"gigType":"ride","cityTier":"metro","hoursOnline":10,"earnings":3000}`))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, `"base":300`)
		})
	})
}
