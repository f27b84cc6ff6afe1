package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fairpay/fairpay/internal/adapters/http/api"
	"github.com/fairpay/fairpay/internal/adapters/http/client"
	service "github.com/fairpay/fairpay/internal/app"
	"github.com/fairpay/fairpay/internal/domain/audit"
	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service talking to a live scoring server", t, func() {
		mux := http.NewServeMux()
		api.NewServer(scoring.NewHeuristic()).Register(context.Background(), mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		svc := service.New(service.WithAnalyzer(client.New(
			client.WithBaseURL(srv.URL+"/"),
			client.WithTimeout(5*time.Second),
		)))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		Convey("When the quick example is analyzed", func() {
			report, err := svc.SubmitAnalysis(ctx, service.QuickExample())

			Convey("Then the server's audit should come back as a report", func() {
				So(err, ShouldBeNil)
				So(report.Score, ShouldEqual, 85)
				So(report.Tag, ShouldEqual, scoring.TagPremium)
				So(report.Metrics.BonusMismatchCount, ShouldEqual, 2)
				So(report.Metrics.TotalDeductions, ShouldEqual, 270)
				So(report.Headline, ShouldEqual, "2 instance(s) where expected bonuses were not fully received.")
				So(len(report.Preview), ShouldEqual, 2)
			})

			Convey("Then the report should render", func() {
				So(err, ShouldBeNil)
				var b strings.Builder
				So(render.RenderReport(&b, render.English, report.View()), ShouldBeNil)
				So(b.String(), ShouldContainSubstring, "85")
			})
		})

		Convey("When an appeal is generated", func() {
			letter, err := svc.GenerateAppeal(ctx, service.QuickExample())

			Convey("Then the letter should quote the score and anomalies", func() {
				So(err, ShouldBeNil)
				So(letter, ShouldStartWith, "To the Support Team,")
				So(letter, ShouldContainSubstring, "**85/100**")
				So(letter, ShouldNotContainSubstring, audit.NoAnomaliesMessage)
			})
		})
	})

	Convey("Given a service pointed at a server that is down", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		svc := service.New(service.WithAnalyzer(client.New(client.WithBaseURL(url))))

		Convey("When an analysis is submitted", func() {
			_, err := svc.SubmitAnalysis(context.Background(), service.QuickExample())

			Convey("Then a generic analysis error should be returned", func() {
				var ae *client.AnalysisError
				So(errors.As(err, &ae), ShouldBeTrue)
				So(ae.UserMessage(), ShouldEqual, client.DefaultFailureMessage)
				So(svc.State().Last, ShouldBeNil)
			})
		})
	})
}
