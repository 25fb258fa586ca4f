package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/branchlab/biquad"
)

// Outcome records a single check.
type Outcome struct {
	Section string
	Name    string
	Passed  bool
}

// Summary tallies the outcomes of a run.
type Summary struct {
	Passed int
	Failed int
}

// Total returns Passed + Failed.
func (s Summary) Total() int { return s.Passed + s.Failed }

// Reporter writes PASS/FAIL lines and remembers every outcome.
// It is not safe for concurrent use.
type Reporter struct {
	w       io.Writer
	log     *slog.Logger
	tol     float64
	solver  []biquad.Option
	title   cases.Caser
	section string
	results []Outcome
	err     error
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:     w,
		log:   discardLogger(),
		tol:   DefaultRootTolerance,
		title: cases.Title(language.English, cases.NoLower),
	}
	for _, set := range opts {
		if set != nil {
			set(r)
		}
	}

	return r
}

// Section starts a titled group of checks. Groups after the first are
// separated by a blank line.
func (r *Reporter) Section(name string) {
	if r.section != "" || len(r.results) > 0 {
		r.printf("\n")
	}
	r.section = name
	r.printf("=== %s ===\n", r.title.String(name))
}

// Check compares two integers.
func (r *Reporter) Check(name string, got, expected int) bool {
	if got == expected {
		r.printf("[PASS] %s => %d\n", name, got)

		return r.record(name, true, slog.Int("got", got))
	}
	r.printf("[FAIL] %s => got %d expected %d\n", name, got, expected)

	return r.record(name, false, slog.Int("got", got), slog.Int("expected", expected))
}

// CheckRoots solves a·x⁴ + b·x² + c = 0 and compares the roots with
// expected as multisets. An empty expected also accepts an Infinite result.
func (r *Reporter) CheckRoots(name string, a, b, c float64, expected []float64) bool {
	res := biquad.Solve(a, b, c, r.solver...)
	attrs := []slog.Attr{
		slog.Any("coeffs", [3]float64{a, b, c}),
		slog.String("kind", res.Kind.String()),
		slog.String("case", res.Case.String()),
	}

	if res.Kind == biquad.Infinite {
		if len(expected) == 0 {
			r.printf("[PASS] %s infinite solutions\n", name)

			return r.record(name, true, attrs...)
		}
		r.printf("[FAIL] %s -> infinite but expected finite\n", name)

		return r.record(name, false, attrs...)
	}

	got := slices.Clone(res.Roots)
	want := slices.Clone(expected)
	slices.Sort(got)
	slices.Sort(want)
	attrs = append(attrs, slog.Any("roots", got))

	if len(got) != len(want) {
		r.printf("[FAIL] %s size mismatch (got %d, exp %d)\n", name, len(got), len(want))

		return r.record(name, false, attrs...)
	}
	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], r.tol) {
			r.printf("[FAIL] %s wrong value at idx %d (got %g, exp %g)\n", name, i, got[i], want[i])

			return r.record(name, false, attrs...)
		}
	}
	r.printf("[PASS] %s\n", name)

	return r.record(name, true, attrs...)
}

// Outcomes returns a copy of all recorded checks in order.
func (r *Reporter) Outcomes() []Outcome { return slices.Clone(r.results) }

// Failures returns the failed checks in order.
func (r *Reporter) Failures() []Outcome {
	return lo.Filter(r.results, func(o Outcome, _ int) bool { return !o.Passed })
}

// Summary tallies the recorded checks.
func (r *Reporter) Summary() Summary {
	passed := lo.CountBy(r.results, func(o Outcome) bool { return o.Passed })

	return Summary{Passed: passed, Failed: len(r.results) - passed}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error { return r.err }

func (r *Reporter) record(name string, passed bool, attrs ...slog.Attr) bool {
	r.results = append(r.results, Outcome{Section: r.section, Name: name, Passed: passed})
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "check",
		append([]slog.Attr{
			slog.String("section", r.section),
			slog.String("name", name),
			slog.Bool("passed", passed),
		}, attrs...)...)

	return passed
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = fmt.Errorf("harness: write: %w", err)
	}
}
