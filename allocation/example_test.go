package allocation_test

import (
	"fmt"

	"github.com/katalvlaran/choicekit/allocation"
	"github.com/katalvlaran/choicekit/profile"
)

// Agent 1 picks first and takes item 0; agent 0 falls back to item 1.
func ExampleSerialDictatorship() {
	p, _ := profile.OrdinalFromRankMatrix([][]int{
		{1, 2, 3},
		{1, 3, 2},
		{2, 1, 3},
	})

	out, err := allocation.SerialDictatorship(p, []int{1, 2, 0}, allocation.Options{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output: [2 0 1]
}

// Two agents fight over item 0 and split it evenly.
func ExampleProbabilisticSerial() {
	p, _ := profile.OrdinalFromRankMatrix([][]int{
		{1, 2},
		{1, 2},
	})

	shares, err := allocation.ProbabilisticSerial(p, allocation.Options{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(shares)
	// Output: [[0.5 0.5] [0.5 0.5]]
}
