// Package cli is the command-line presentation layer over the FairPay
// controller.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairpay/fairpay/internal/adapters/http/client"
	service "github.com/fairpay/fairpay/internal/app"
	"github.com/fairpay/fairpay/internal/config"
	"github.com/fairpay/fairpay/internal/domain/scoring"
	"github.com/fairpay/fairpay/internal/render"
	"github.com/fairpay/fairpay/pkg/logger"
)

type globalFlags struct {
	baseURL string
	lang    string
	timeout time.Duration
	verbose bool
}

// app holds what the subcommands share once the root pre-run has resolved
// configuration.
type app struct {
	out    io.Writer
	errOut io.Writer
	flags  globalFlags
	svc    *service.Service
}

// NewRootCommand builds the fairpay command tree writing results to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "fairpay",
		Short: "Gig-worker pay fairness checks",
		Long: "fairpay scores gig-work shifts against the FairPay scoring service, " +
			"drafts appeal letters and estimates the fairness of a monthly offer locally.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.baseURL, "base-url", "", "Scoring service root (default from FAIRPAY_API_BASE_URL)")
	pf.StringVarP(&a.flags.lang, "lang", "l", "", "Output language: en, hi or kn (default from FAIRPAY_LANGUAGE)")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "Request timeout (default from FAIRPAY_REQUEST_TIMEOUT_MS)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.analyzeCommand(),
		a.appealCommand(),
		a.offerCommand(),
		a.exampleCommand(),
		a.templateCommand(),
	)
	return root
}

// Execute runs the command tree with args and prints a user-facing message
// on failure.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %s\n", userMessage(err))
	}
	return err
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithOutput(a.errOut)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	level := cfg.LogLevel
	if a.flags.verbose {
		level = "debug"
	}
	if err := logger.SetLevelString(level); err != nil {
		_ = logger.SetLevelString("info")
	}
	log := logger.Named("cli")

	langCode := cfg.Language
	if a.flags.lang != "" {
		langCode = a.flags.lang
	}
	lang, err := render.ParseLanguage(langCode)
	if err != nil {
		return err
	}

	baseURL := cfg.APIBaseURL
	if a.flags.baseURL != "" {
		baseURL = a.flags.baseURL
	}
	timeout := cfg.RequestTimeout()
	if a.flags.timeout > 0 {
		timeout = a.flags.timeout
	}

	a.svc = service.New(
		service.WithAnalyzer(client.New(
			client.WithBaseURL(baseURL),
			client.WithTimeout(timeout),
			client.WithLogger(log.Named("client")),
		)),
		service.WithLanguage(lang),
		service.WithLogger(log),
		service.WithOfferScorer(scoring.NewHeuristic(scoring.WithRates(cfg.BaseRates))),
	)
	log.Debug(ctx, "cli configured",
		logger.String("base_url", baseURL),
		logger.String("language", lang.String()),
		logger.Duration("timeout", timeout))
	return nil
}

func (a *app) language() render.Language {
	return a.svc.State().Language
}

// userMessage returns the text a worker should see for err.
func userMessage(err error) string {
	var ae *client.AnalysisError
	if errors.As(err, &ae) {
		return ae.UserMessage()
	}
	return err.Error()
}
