package shift_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fairpay/fairpay/internal/domain/shift"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeTotals(t *testing.T) {
	Convey("Given the two sample shifts", t, func() {
		shifts := []shift.Shift{
			{Earnings: 3200, BonusesReceived: 400, Deductions: 150, HoursOnline: 8, TasksCompleted: 14},
			{Earnings: 2400, BonusesReceived: 250, Deductions: 120, HoursOnline: 6, TasksCompleted: 11},
		}

		Convey("When totals are computed", func() {
			totals := shift.ComputeTotals(shifts)

			Convey("Then hours, net earnings and hourly rate should match", func() {
				So(totals.TotalHours, ShouldEqual, 14)
				So(totals.TotalEarnings, ShouldEqual, 5980)
				So(totals.HourlyRate, ShouldAlmostEqual, 427.142857, 1e-5)
			})
		})
	})

	Convey("Given an empty batch", t, func() {
		totals := shift.ComputeTotals(nil)
		So(totals, ShouldResemble, shift.Totals{})
	})

	Convey("Given shifts with no hours", t, func() {
		totals := shift.ComputeTotals([]shift.Shift{{Earnings: 300}})
		So(totals.HourlyRate, ShouldEqual, 0)
		So(totals.TotalEarnings, ShouldEqual, 300)
	})

	Convey("Given shifts with non-finite fields", t, func() {
		totals := shift.ComputeTotals([]shift.Shift{{Earnings: math.Inf(1), HoursOnline: 2, BonusesReceived: 100}})
		So(totals.TotalEarnings, ShouldEqual, 100)
		So(totals.HourlyRate, ShouldEqual, 50)
	})
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	Convey("Given a batch of shifts in random orders", t, func() {
		rng := rand.New(rand.NewSource(7))
		base := make([]shift.Shift, 10)
		for i := range base {
			base[i] = shift.Shift{
				HoursOnline:     float64(rng.Intn(12) + 1),
				TasksCompleted:  float64(rng.Intn(20) + 1),
				Earnings:        float64(rng.Intn(5000) + 100),
				BonusesReceived: float64(rng.Intn(500)),
				Deductions:      float64(rng.Intn(300)),
			}
		}
		want := shift.ComputeTotals(base)

		Convey("Then every permutation should give the same totals", func() {
			for i := 0; i < 25; i++ {
				perm := append([]shift.Shift(nil), base...)
				rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })
				got := shift.ComputeTotals(perm)
				So(got.TotalHours, ShouldAlmostEqual, want.TotalHours, 1e-9)
				So(got.TotalEarnings, ShouldAlmostEqual, want.TotalEarnings, 1e-9)
				So(got.HourlyRate, ShouldAlmostEqual, want.HourlyRate, 1e-9)
			}
		})
	})
}
