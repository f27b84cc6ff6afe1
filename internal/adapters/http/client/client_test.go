package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fairpay/fairpay/internal/adapters/http/client"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func newServer(handler http.HandlerFunc) (*httptest.Server, *client.Client) {
	srv := httptest.NewServer(handler)
	return srv, client.New(client.WithBaseURL(srv.URL+"/"), client.WithTimeout(2*time.Second))
}

func TestClientAnalyze(t *testing.T) {
	Convey("Given a scoring service that accepts the batch", t, func() {
		var gotPath, gotReqID string
		var gotBody types.ShiftBatch
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotReqID = r.Header.Get(client.RequestIDHeader)
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{"fairness_score":85,"anomalies":["2 instance(s) where expected bonuses were not fully received."],"metrics":{"suspicious_rate_drops":0,"bonus_mismatch_count":2,"total_deductions":270}}`))
		})
		defer srv.Close()

		Convey("When a batch is analyzed", func() {
			resp, err := c.Analyze(context.Background(), shift.Presets())

			Convey("Then the decoded response should be returned", func() {
				So(err, ShouldBeNil)
				So(resp.FairnessScore, ShouldEqual, 85)
				So(resp.Metrics.BonusMismatchCount, ShouldEqual, 2)
				So(resp.Metrics.TotalDeductions, ShouldEqual, 270)
				So(len(resp.Anomalies), ShouldEqual, 1)
			})

			Convey("And the request should carry the shifts and a request id", func() {
				So(gotPath, ShouldEqual, client.AnalyzePath)
				So(gotReqID, ShouldNotBeEmpty)
				So(len(gotBody.Shifts), ShouldEqual, 2)
				So(gotBody.Shifts[0].Earnings, ShouldEqual, 3200)
			})
		})
	})

	Convey("Given a service that answers with an error field and status 200", t, func() {
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"No shifts provided"}`))
		})
		defer srv.Close()

		Convey("Then the call should fail with that message", func() {
			_, err := c.Analyze(context.Background(), shift.Presets())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, client.ErrAnalysis), ShouldBeTrue)

			var ae *client.AnalysisError
			So(errors.As(err, &ae), ShouldBeTrue)
			So(ae.Status, ShouldEqual, http.StatusOK)
			So(ae.UserMessage(), ShouldEqual, "No shifts provided")
		})
	})

	Convey("Given a service that fails without a body", t, func() {
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer srv.Close()

		Convey("Then the generic message should be used", func() {
			_, err := c.Analyze(context.Background(), shift.Presets())
			var ae *client.AnalysisError
			So(errors.As(err, &ae), ShouldBeTrue)
			So(ae.Status, ShouldEqual, http.StatusBadGateway)
			So(ae.UserMessage(), ShouldEqual, client.DefaultFailureMessage)
		})
	})

	Convey("Given a service that returns malformed JSON", t, func() {
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"fairness_score":`))
		})
		defer srv.Close()

		Convey("Then the call should fail as an analysis error", func() {
			_, err := c.Analyze(context.Background(), shift.Presets())
			So(errors.Is(err, client.ErrAnalysis), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable service", t, func() {
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		Convey("Then the call should fail without a status", func() {
			_, err := c.Analyze(context.Background(), shift.Presets())
			var ae *client.AnalysisError
			So(errors.As(err, &ae), ShouldBeTrue)
			So(ae.Status, ShouldEqual, 0)
			So(ae.Cause, ShouldNotBeNil)
		})
	})

	Convey("Given a service that counts requests and always fails", t, func() {
		var calls atomic.Int32
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer srv.Close()

		Convey("Then exactly one request should be made", func() {
			_, err := c.Analyze(context.Background(), shift.Presets())
			So(err, ShouldNotBeNil)
			So(calls.Load(), ShouldEqual, 1)
		})
	})
}

func TestClientGenerateAppeal(t *testing.T) {
	Convey("Given a service that drafts letters", t, func() {
		var gotPath string
		srv, c := newServer(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"appeal_letter":"To the Support Team,","fairness_score":85}`))
		})
		defer srv.Close()

		Convey("When an appeal is requested", func() {
			resp, err := c.GenerateAppeal(context.Background(), shift.Presets())

			Convey("Then the letter should be returned", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, client.AppealPath)
				So(resp.AppealLetter, ShouldEqual, "To the Support Team,")
				So(resp.FairnessScore, ShouldEqual, 85)
			})
		})
	})
}

func TestClientOptions(t *testing.T) {
	Convey("Given a client built with a trailing slash base URL", t, func() {
		c := client.New(client.WithBaseURL(" http://example.test/ "))
		So(c.BaseURL(), ShouldEqual, "http://example.test")
	})

	Convey("Given a client with empty options", t, func() {
		c := client.New(client.WithBaseURL(""), client.WithTimeout(0), client.WithHTTPClient(nil), client.WithLogger(nil))
		So(c.BaseURL(), ShouldEqual, client.DefaultBaseURL)
	})
}
