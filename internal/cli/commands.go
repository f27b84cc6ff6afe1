package cli

import (
	"github.com/spf13/cobra"

	service "github.com/fairpay/fairpay/internal/app"
	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/render"
)

type batchFlags struct {
	file    string
	example bool
}

func (b *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.file, "file", "f", "", "Shift batch in YAML or JSON, - for stdin")
	cmd.Flags().BoolVar(&b.example, "example", false, "Use the two sample shifts")
}

func (b *batchFlags) load(cmd *cobra.Command) ([]shift.RawShift, error) {
	switch {
	case b.example:
		return service.QuickExample(), nil
	case b.file != "":
		return readShiftsFile(b.file, cmd.InOrStdin())
	default:
		return nil, ErrNoInput
	}
}

func (a *app) analyzeCommand() *cobra.Command {
	var in batchFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a batch of shifts with the scoring service",
		Example: "  fairpay analyze --example\n" +
			"  fairpay analyze -f shifts.yaml --lang hi",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := in.load(cmd)
			if err != nil {
				return err
			}
			report, err := a.svc.SubmitAnalysis(cmd.Context(), raw)
			if err != nil {
				return err
			}
			return render.RenderReport(a.out, a.language(), report.View())
		},
	}
	in.register(cmd)
	return cmd
}

func (a *app) appealCommand() *cobra.Command {
	var in batchFlags
	cmd := &cobra.Command{
		Use:   "appeal",
		Short: "Draft an appeal letter for a batch of shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := in.load(cmd)
			if err != nil {
				return err
			}
			letter, err := a.svc.GenerateAppeal(cmd.Context(), raw)
			if err != nil {
				return err
			}
			return render.RenderAppeal(a.out, a.language(), letter)
		},
	}
	in.register(cmd)
	return cmd
}

func (a *app) offerCommand() *cobra.Command {
	var o scoring.Offer
	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Estimate the fairness of a monthly offer locally",
		Example: "  fairpay offer --gig ride --tier metro --vehicle car --hours 230 --tasks 340 \\\n" +
			"    --earnings 78000 --bonuses 9000 --deductions 6000 --fees 8000 --costs 15000",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.RenderOffer(a.out, a.language(), a.svc.EstimateOffer(o))
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.GigType, "gig", "ride", "Gig type: ride, delivery, parcel or other")
	f.StringVar(&o.CityTier, "tier", "metro", "City tier: metro, tier2 or tier3")
	f.StringVar(&o.Vehicle, "vehicle", "", "Vehicle, e.g. bike, car, cycle")
	f.Float64Var(&o.HoursOnline, "hours", 0, "Hours online in the month")
	f.Float64Var(&o.TasksCompleted, "tasks", 0, "Tasks completed in the month")
	f.Float64Var(&o.Earnings, "earnings", 0, "Earnings (₹)")
	f.Float64Var(&o.BonusesReceived, "bonuses", 0, "Bonuses received (₹)")
	f.Float64Var(&o.Deductions, "deductions", 0, "Deductions and penalties (₹)")
	f.Float64Var(&o.PlatformFees, "fees", 0, "Platform fees (₹)")
	f.Float64Var(&o.ExtraCosts, "costs", 0, "Fuel, maintenance and other costs (₹)")
	return cmd
}

func (a *app) exampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print the sample shift batch",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return WriteShifts(a.out, shift.Presets())
		},
	}
}

func (a *app) templateCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a blank shift batch to fill in",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return WriteTemplate(a.out, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", shift.MinShiftCount, "Number of shifts (1-10)")
	return cmd
}
