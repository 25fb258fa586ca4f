package harness

import "github.com/katalvlaran/branchlab/classify"

// RootCase is one row of the root-solver table.
type RootCase struct {
	Name     string
	A, B, C  float64
	Expected []float64 // empty means "no finite roots" or infinite
}

// RootCases is the fixed solver table: identity, contradiction, the three
// linear y signs and the three discriminant signs.
var RootCases = []RootCase{
	{Name: "Case1 (0,0,0)", A: 0, B: 0, C: 0},
	{Name: "Case2 (0,0,5)", A: 0, B: 0, C: 5},
	{Name: "Case3 (0,1,4)", A: 0, B: 1, C: 4},
	{Name: "Case4 (0,1,0)", A: 0, B: 1, C: 0, Expected: []float64{0}},
	{Name: "Case5 (0,1,-4)", A: 0, B: 1, C: -4, Expected: []float64{2, -2}},
	{Name: "Case6 (1,0,1)", A: 1, B: 0, C: 1},
	{Name: "Case7 (1,0,0)", A: 1, B: 0, C: 0, Expected: []float64{0}},
	{Name: "Case8 (1,-2,1)", A: 1, B: -2, C: 1, Expected: []float64{1, -1}},
	{Name: "Case9 (1,-5,4)", A: 1, B: -5, C: 4, Expected: []float64{2, -2, 1, -1}},
}

// RunSuite runs the branch exercises followed by the root-solver table.
// The expected values are the exercise's own; F1Bug(-3) and the FindMax
// ties are known to FAIL.
func RunSuite(r *Reporter) Summary {
	r.Section("f1Original")
	r.Check("F1Original(-5)", classify.F1Original(-5), 5)
	r.Check("F1Original(10)", classify.F1Original(10), -10)
	r.Check("F1Original(11)", classify.F1Original(11), 22)

	r.Section("f1Bug")
	r.Check("F1Bug(-3)", classify.F1Bug(-3), 3)
	r.Check("F1Bug(5)", classify.F1Bug(5), -5)
	r.Check("F1Bug(11)", classify.F1Bug(11), 22)

	r.Section("f2")
	r.Check("F2(5)", classify.F2(5), 10)
	r.Check("F2(12)", classify.F2(12), 24)

	r.Section("f3")
	r.Check("F3(1)", classify.F3(1), 2)

	r.Section("findMax")
	r.Check("FindMax(5,3,2)", classify.FindMax(5, 3, 2), 5)
	r.Check("FindMax(3,6,1)", classify.FindMax(3, 6, 1), 6)
	r.Check("FindMax(1,2,7)", classify.FindMax(1, 2, 7), 7)
	r.Check("FindMax(4,4,2)", classify.FindMax(4, 4, 2), 4)
	r.Check("FindMax(2,7,7)", classify.FindMax(2, 7, 7), 7)
	r.Check("FindMax(9,5,9)", classify.FindMax(9, 5, 9), 9)
	r.Check("FindMax(5,5,5)", classify.FindMax(5, 5, 5), 5)

	r.Section("biquad")
	for _, rc := range RootCases {
		r.CheckRoots(rc.Name, rc.A, rc.B, rc.C, rc.Expected)
	}

	return r.Summary()
}
