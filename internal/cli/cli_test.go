package cli_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fairpay/fairpay/internal/adapters/http/api"
	"github.com/fairpay/fairpay/internal/cli"
	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	err := cli.Execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	Convey("Given a running scoring server", t, func() {
		mux := http.NewServeMux()
		api.NewServer(scoring.NewHeuristic()).Register(context.Background(), mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When the sample batch is analyzed", func() {
			out, _, err := run("analyze", "--example", "--base-url", srv.URL)

			Convey("Then the report should be printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldStartWith, "FairPay analysis")
				So(out, ShouldContainSubstring, "85/100")
				So(out, ShouldContainSubstring, "2 instance(s) where expected bonuses were not fully received.")
			})
		})

		Convey("When a JSON batch file is analyzed", func() {
			path := writeFile(t, "shifts.json", `{"shifts":[
				{"hours_online":"8","tasks_completed":14,"earnings":3200,"bonuses_received":400,"bonuses_expected":500,"deductions":150},
				{"hours_online":6,"tasks_completed":11,"earnings":"2400","bonuses_received":250,"bonuses_expected":300,"deductions":120}]}`)
			out, _, err := run("analyze", "-f", path, "--base-url", srv.URL)

			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "85/100")
		})

		Convey("When a YAML list is analyzed in Hindi", func() {
			path := writeFile(t, "shifts.yaml", "- hours_online: 8\n  tasks_completed: 14\n  earnings: 3200\n")
			out, _, err := run("analyze", "-f", path, "--lang", "hi", "--base-url", srv.URL)

			So(err, ShouldBeNil)
			So(out, ShouldNotStartWith, "FairPay analysis")
		})

		Convey("When a shift is incomplete", func() {
			path := writeFile(t, "shifts.yaml", "shifts:\n  - earnings: 3200\n")
			_, errOut, err := run("analyze", "-f", path, "--base-url", srv.URL)

			Convey("Then the validation message should be shown", func() {
				So(errors.Is(err, shift.ErrValidation), ShouldBeTrue)
				So(errOut, ShouldContainSubstring, shift.MissingFieldsMessage)
			})
		})

		Convey("When an appeal is drafted", func() {
			out, _, err := run("appeal", "--example", "--base-url", srv.URL)

			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "To the Support Team,")
			So(out, ShouldContainSubstring, "**85/100**")
		})
	})

	Convey("Given a scoring server that is down", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		Convey("When a batch is analyzed", func() {
			_, errOut, err := run("analyze", "--example", "--base-url", url)

			Convey("Then the generic failure message should be shown", func() {
				So(err, ShouldNotBeNil)
				So(errOut, ShouldContainSubstring, "Error: Analysis failed")
			})
		})
	})

	Convey("Given no input flags", t, func() {
		_, _, err := run("analyze")
		So(errors.Is(err, cli.ErrNoInput), ShouldBeTrue)
	})

	Convey("Given an unknown language", t, func() {
		_, _, err := run("example", "--lang", "fr")
		So(errors.Is(err, render.ErrUnknownLanguage), ShouldBeTrue)
	})
}

func TestOfferCommand(t *testing.T) {
	Convey("Given the reference offer as flags", t, func() {
		out, _, err := run("offer", "--gig", "ride", "--tier", "metro", "--vehicle", "car",
			"--hours", "230", "--tasks", "340", "--earnings", "78000", "--bonuses", "9000",
			"--deductions", "6000", "--fees", "8000", "--costs", "15000")

		Convey("Then the local estimate should be printed", func() {
			So(err, ShouldBeNil)
			So(out, ShouldStartWith, "Offer estimate")
			So(out, ShouldContainSubstring, "44/100")
			So(out, ShouldContainSubstring, "₹ 335")
		})
	})
}

func TestExampleAndTemplate(t *testing.T) {
	Convey("Given the example command", t, func() {
		out, _, err := run("example")
		So(err, ShouldBeNil)

		Convey("Then its output should read back as the sample shifts", func() {
			raw, err := cli.ReadShifts(strings.NewReader(out))
			So(err, ShouldBeNil)
			shifts, err := shift.Collect(raw)
			So(err, ShouldBeNil)
			So(shifts, ShouldResemble, shift.Presets())
		})
	})

	Convey("Given the template command with too many shifts", t, func() {
		out, _, err := run("template", "-n", "50")
		So(err, ShouldBeNil)

		Convey("Then the count should be clamped and the blanks rejected", func() {
			raw, err := cli.ReadShifts(strings.NewReader(out))
			So(err, ShouldBeNil)
			So(len(raw), ShouldEqual, shift.MaxShiftCount)
			_, err = shift.Collect(raw)
			So(errors.Is(err, shift.ErrValidation), ShouldBeTrue)
		})
	})
}

func TestReadShifts(t *testing.T) {
	Convey("Given empty input", t, func() {
		_, err := cli.ReadShifts(strings.NewReader(""))
		So(errors.Is(err, cli.ErrReadShifts), ShouldBeTrue)
	})

	Convey("Given malformed input", t, func() {
		_, err := cli.ReadShifts(strings.NewReader("shifts: [\n"))
		So(errors.Is(err, cli.ErrReadShifts), ShouldBeTrue)
	})
}
