package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchlab/classify"
)

// TestF1Original covers both sides of the x > 10 threshold.
func TestF1Original(t *testing.T) {
	assert.Equal(t, 5, classify.F1Original(-5))
	assert.Equal(t, -10, classify.F1Original(10), "10 is not > 10")
	assert.Equal(t, 22, classify.F1Original(11))
}

// TestF1Bug covers all three branches, including the diverging x <= 0 path.
func TestF1Bug(t *testing.T) {
	assert.Equal(t, -6, classify.F1Bug(-3))
	assert.Equal(t, 0, classify.F1Bug(0))
	assert.Equal(t, -5, classify.F1Bug(5))
	assert.Equal(t, 22, classify.F1Bug(11))

	assert.NotEqual(t, classify.F1Original(-3), classify.F1Bug(-3), "the defect shows for x <= 0")
	for _, x := range []int{1, 5, 10, 11, 100} {
		assert.Equal(t, classify.F1Original(x), classify.F1Bug(x), "x=%d", x)
	}
}

// TestF2 verifies every input doubles.
func TestF2(t *testing.T) {
	for _, x := range []int{-7, 0, 1, 5, 9, 10, 12} {
		assert.Equal(t, 2*x, classify.F2(x), "x=%d", x)
	}
}

// TestF3 checks both in-domain and out-of-domain arguments.
func TestF3(t *testing.T) {
	assert.Equal(t, 2, classify.F3(1))
	assert.Equal(t, 4, classify.F3(2), "cos(2) < 0 gives NaN and still doubles")
	assert.Equal(t, 0, classify.F3(0))
}

// TestF3Checked reports ErrDomain for a non-positive log argument.
func TestF3Checked(t *testing.T) {
	v, err := classify.F3Checked(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = classify.F3Checked(2)
	assert.ErrorIs(t, err, classify.ErrDomain)

	_, err = classify.F3Checked(0)
	assert.ErrorIs(t, err, classify.ErrDomain)
}

// TestFindMax covers the strict-max cases and the tie defect.
func TestFindMax(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c int
		want    int
	}{
		{"num1 largest", 5, 3, 2, 5},
		{"num2 largest", 3, 6, 1, 6},
		{"num3 largest", 1, 2, 7, 7},
		{"num1=num2 tie", 4, 4, 2, 0},
		{"num2=num3 tie", 2, 7, 7, 0},
		{"num1=num3 tie", 9, 5, 9, 0},
		{"all equal", 5, 5, 5, 0},
		{"all negative", -3, -1, -2, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify.FindMax(tc.a, tc.b, tc.c))
		})
	}
}

// TestMax3 verifies the corrected maximum on the same tie inputs.
func TestMax3(t *testing.T) {
	assert.Equal(t, 4, classify.Max3(4, 4, 2))
	assert.Equal(t, 7, classify.Max3(2, 7, 7))
	assert.Equal(t, 9, classify.Max3(9, 5, 9))
	assert.Equal(t, 5, classify.Max3(5, 5, 5))
	assert.Equal(t, -1, classify.Max3(-3, -1, -2))
}
