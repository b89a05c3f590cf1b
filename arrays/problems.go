package arrays

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 1, Slug: "two-sum", Title: "Two Sum", Difficulty: problem.Easy, Tags: []string{"array", "hash-table"}},
			Solver: problem.Func2(TwoSum),
		},
		{
			Meta:   problem.Meta{ID: 11, Slug: "container-with-most-water", Title: "Container With Most Water", Difficulty: problem.Medium, Tags: []string{"array", "two-pointers", "greedy"}},
			Solver: problem.Func1(ContainerWithMostWater),
		},
		{
			Meta:      problem.Meta{ID: 15, Slug: "3sum", Title: "3Sum", Difficulty: problem.Medium, Tags: []string{"array", "two-pointers", "sorting"}},
			Unordered: true,
			Nested:    true,
			Solver:    problem.Func1(ThreeSum),
		},
		{
			Meta:   problem.Meta{ID: 53, Slug: "maximum-subarray", Title: "Maximum Subarray", Difficulty: problem.Medium, Tags: []string{"array", "dynamic-programming"}},
			Solver: problem.Func1(MaxSubArray),
		},
		{
			Meta:   problem.Meta{ID: 121, Slug: "best-time-to-buy-and-sell-stock", Title: "Best Time to Buy and Sell Stock", Difficulty: problem.Easy, Tags: []string{"array"}},
			Solver: problem.Func1(MaxProfit),
		},
		{
			Meta:   problem.Meta{ID: 128, Slug: "longest-consecutive-sequence", Title: "Longest Consecutive Sequence", Difficulty: problem.Medium, Tags: []string{"array", "hash-table"}},
			Solver: problem.Func1(LongestConsecutive),
		},
		{
			Meta:   problem.Meta{ID: 209, Slug: "minimum-size-subarray-sum", Title: "Minimum Size Subarray Sum", Difficulty: problem.Medium, Tags: []string{"array", "sliding-window", "prefix-sum"}},
			Solver: problem.Func2(MinSubArrayLen),
		},
		{
			Meta:   problem.Meta{ID: 238, Slug: "product-of-array-except-self", Title: "Product of Array Except Self", Difficulty: problem.Medium, Tags: []string{"array", "prefix-sum"}},
			Solver: problem.Func1(ProductExceptSelf),
		},
		{
			Meta:   problem.Meta{ID: 283, Slug: "move-zeroes", Title: "Move Zeroes", Difficulty: problem.Easy, Tags: []string{"array", "two-pointers"}},
			Solver: problem.Func1(MoveZeroes),
		},
		{
			Meta:   problem.Meta{ID: 560, Slug: "subarray-sum-equals-k", Title: "Subarray Sum Equals K", Difficulty: problem.Medium, Tags: []string{"array", "hash-table", "prefix-sum"}},
			Solver: problem.Func2(SubarraySum),
		},
	}
}
