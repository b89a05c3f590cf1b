package graphs_test

import (
	"fmt"

	"github.com/katalvlaran/lvpuzzle/graphs"
)

// ExampleSwimInWater shows the minimax path over a spiral elevation map:
// the path must cross elevation 16 at the latest.
func ExampleSwimInWater() {
	grid := [][]int{
		{0, 1, 2, 3, 4},
		{24, 23, 22, 21, 5},
		{12, 13, 14, 15, 16},
		{11, 17, 18, 19, 20},
		{10, 9, 8, 7, 6},
	}
	t, err := graphs.SwimInWater(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t)
	// Output: 16
}

// ExampleFindOrder orders four courses with a diamond of prerequisites.
func ExampleFindOrder() {
	order, _ := graphs.FindOrder(4, [][]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}})
	fmt.Println(order)
	// Output: [0 2 1 3]
}
