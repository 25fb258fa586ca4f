package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/branchlab/biquad"
	"github.com/katalvlaran/branchlab/harness"
	"github.com/katalvlaran/branchlab/internal/app"
)

// newRootCmd wires cfg into the command tree. Persistent flags override the
// environment-derived values before any subcommand runs.
func newRootCmd(cfg *app.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "branchlab",
		Short:        "Branch-coverage exercises and a biquadratic root solver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.Validate()
		},
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "zero tolerance used by the solver")
	pf.Float64Var(&cfg.RootTolerance, "tolerance", cfg.RootTolerance, "absolute tolerance when comparing roots")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(cfg), newSolveCmd(cfg))

	return root
}

// solverOptions maps the config onto biquad options.
func solverOptions(cfg *app.Config) []biquad.Option {
	return []biquad.Option{biquad.WithEpsilon(cfg.Epsilon)}
}

// newReporter builds a Reporter writing PASS/FAIL lines to cmd's stdout and
// logs to its stderr.
func newReporter(cmd *cobra.Command, cfg *app.Config) (*harness.Reporter, *slog.Logger) {
	logger := app.NewLogger(cfg, cmd.ErrOrStderr())
	r := harness.NewReporter(cmd.OutOrStdout(),
		harness.WithLogger(logger),
		harness.WithRootTolerance(cfg.RootTolerance),
		harness.WithSolverOptions(solverOptions(cfg)...),
	)

	return r, logger
}
