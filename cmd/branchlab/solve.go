package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/branchlab/biquad"
	"github.com/katalvlaran/branchlab/internal/app"
)

// newSolveCmd stops flag parsing at the first coefficient so that "-4" is
// read as a number; a leading negative coefficient still needs "--".
func newSolveCmd(cfg *app.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [flags] [--] A B C",
		Short: "Solve A·x⁴ + B·x² + C = 0",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var k [3]float64
			for i, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("coefficient %d: %w", i+1, err)
				}
				k[i] = v
			}
			if err := biquad.Validate(k[0], k[1], k[2]); err != nil {
				return err
			}

			res := biquad.Solve(k[0], k[1], k[2], solverOptions(cfg)...)
			app.NewLogger(cfg, cmd.ErrOrStderr()).Debug("solved",
				slog.Any("coeffs", k),
				slog.Any("y", res.Y),
				slog.Float64("discriminant", res.Discriminant))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "kind=%s case=%s count=%d roots=%v\n",
				res.Kind, res.Case, res.Count(), res.Roots)

			return err
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}
