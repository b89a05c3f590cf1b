package arrays_test

import (
	"fmt"

	"github.com/katalvlaran/lvpuzzle/arrays"
)

// ExampleTwoSum finds the pair of indices summing to the target.
func ExampleTwoSum() {
	fmt.Println(arrays.TwoSum([]int{2, 7, 11, 15}, 9))
	// Output: [0 1]
}

// ExampleThreeSum lists the unique zero-sum triplets.
func ExampleThreeSum() {
	fmt.Println(arrays.ThreeSum([]int{-1, 0, 1, 2, -1, -4}))
	// Output: [[-1 -1 2] [-1 0 1]]
}
