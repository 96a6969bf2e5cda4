package distortion_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/choicekit/distortion"
	"github.com/katalvlaran/choicekit/profile"
)

// Alternative 0 carries welfare 12 against alternative 1's 8, so
// electing 1 loses a factor of 1.5.
func ExampleDistortion() {
	v, _ := profile.ValuationFromMatrix([][]float64{
		{10, 0, 0},
		{0, 5, 5},
		{2, 3, 5},
	})

	d, err := distortion.Distortion([]int{1}, v, distortion.Options{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	// Output: 1.5
}

// A Condorcet cycle admits no safe winner: the instance-optimal
// randomized rule still loses a factor of 3 in the worst case.
func ExampleOptimal() {
	p, _ := profile.OrdinalFromRankMatrix([][]int{
		{1, 2, 3},
		{2, 3, 1},
		{3, 1, 2},
	})

	d, err := distortion.Optimal(p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(math.Round(d))
	// Output: 3
}
