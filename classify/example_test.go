package classify_test

import (
	"fmt"

	"github.com/katalvlaran/branchlab/classify"
)

// ExampleFindMax contrasts the strict comparison with Max3 on a tie.
func ExampleFindMax() {
	fmt.Println(classify.FindMax(5, 3, 2), classify.FindMax(4, 4, 2), classify.Max3(4, 4, 2))
	// Output:
	// 5 0 4
}
