package classify

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain indicates that F3's logarithm argument x²·cos(x) is not positive.
var ErrDomain = errors.New("classify: log argument out of domain")

// F1Original returns 2x for x > 10 and −x otherwise.
func F1Original(x int) int {
	if x > 10 {
		return 2 * x
	}

	return -x
}

// F1Bug is F1Original with an extra split: non-positive x yields 2x
// instead of −x.
func F1Bug(x int) int {
	switch {
	case x > 10:
		return 2 * x
	case x > 0:
		return -x
	default:
		return 2 * x
	}
}

// F2 returns 2x on every path. The x < 2 branch is shadowed by x < 10
// and can never be taken.
func F2(x int) int {
	switch {
	case x < 10:
		return 2 * x
	case x < 2:
		return -x
	default:
		return 2 * x
	}
}

// F3 compares log(x²·cos x) against 3x and returns 2x on both branches.
// A non-positive log argument produces NaN or −Inf; NaN compares false and
// falls through to the second branch.
func F3(x int) int {
	if f3Arg(x) < 3*float64(x) {
		return 2 * x
	}

	return 2 * x
}

// F3Checked is F3 with the logarithm domain made explicit.
func F3Checked(x int) (int, error) {
	fx := float64(x)
	if arg := fx * fx * math.Cos(fx); arg <= 0 || math.IsNaN(arg) {
		return 0, fmt.Errorf("%w: x=%d, x²·cos(x)=%g", ErrDomain, x, arg)
	}

	return F3(x), nil
}

func f3Arg(x int) float64 {
	fx := float64(x)

	return math.Log(fx * fx * math.Cos(fx))
}

// FindMax returns the strictly greatest of three values. When the maximum
// is shared by two or more arguments no comparison succeeds and 0 is
// returned.
func FindMax(num1, num2, num3 int) int {
	maxVal := 0
	if num1 > num2 && num1 > num3 {
		maxVal = num1
	}
	if num2 > num1 && num2 > num3 {
		maxVal = num2
	}
	if num3 > num1 && num3 > num2 {
		maxVal = num3
	}

	return maxVal
}

// Max3 returns the greatest of three values, ties included.
func Max3(a, b, c int) int {
	return max(a, b, c)
}
