package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/branchlab/harness"
	"github.com/katalvlaran/branchlab/internal/app"
)

// errChecksFailed is returned by run --strict when any check failed.
var errChecksFailed = errors.New("branchlab: checks failed")

func newRunCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full exercise suite and print PASS/FAIL lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, logger := newReporter(cmd, cfg)
			sum := harness.RunSuite(r)
			if err := r.Err(); err != nil {
				return err
			}
			logger.Info("suite finished",
				slog.Int("passed", sum.Passed),
				slog.Int("failed", sum.Failed),
				slog.Bool("strict", cfg.Strict))

			if cfg.Strict && sum.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, sum.Failed, sum.Total())
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when any check fails")

	return cmd
}
