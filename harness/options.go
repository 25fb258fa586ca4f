package harness

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/branchlab/biquad"
)

// DefaultRootTolerance is the absolute tolerance used to compare roots.
const DefaultRootTolerance = 1e-9

const panicToleranceInvalid = "harness: WithRootTolerance: tol must be finite, non-negative"

// Option configures a Reporter.
type Option func(*Reporter)

// WithRootTolerance sets the absolute tolerance for CheckRoots value
// comparisons. Panics on NaN, ±Inf or negative tol.
func WithRootTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(r *Reporter) { r.tol = tol }
}

// WithLogger attaches a structured logger; each check is logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reporter) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSolverOptions forwards numeric policy to biquad.Solve.
func WithSolverOptions(opts ...biquad.Option) Option {
	return func(r *Reporter) { r.solver = append(r.solver, opts...) }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
