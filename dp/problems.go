package dp

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 62, Slug: "unique-paths", Title: "Unique Paths", Difficulty: problem.Medium, Tags: []string{"math", "dynamic-programming", "combinatorics"}},
			Solver: problem.Func2(UniquePaths),
		},
		{
			Meta:   problem.Meta{ID: 70, Slug: "climbing-stairs", Title: "Climbing Stairs", Difficulty: problem.Easy, Tags: []string{"math", "dynamic-programming", "memoization"}},
			Solver: problem.Func1(ClimbStairs),
		},
		{
			Meta:   problem.Meta{ID: 72, Slug: "edit-distance", Title: "Edit Distance", Difficulty: problem.Medium, Tags: []string{"string", "dynamic-programming"}},
			Solver: problem.Func2(MinDistance),
		},
		{
			Meta:   problem.Meta{ID: 139, Slug: "word-break", Title: "Word Break", Difficulty: problem.Medium, Tags: []string{"string", "hash-table", "dynamic-programming"}},
			Solver: problem.Func2(WordBreak),
		},
		{
			Meta:   problem.Meta{ID: 198, Slug: "house-robber", Title: "House Robber", Difficulty: problem.Medium, Tags: []string{"array", "dynamic-programming"}},
			Solver: problem.Func1(Rob),
		},
		{
			Meta:   problem.Meta{ID: 233, Slug: "number-of-digit-one", Title: "Number of Digit One", Difficulty: problem.Hard, Tags: []string{"math", "dynamic-programming", "digit-dp"}},
			Solver: problem.Func1E(CountDigitOne),
		},
		{
			Meta:   problem.Meta{ID: 300, Slug: "longest-increasing-subsequence", Title: "Longest Increasing Subsequence", Difficulty: problem.Medium, Tags: []string{"array", "binary-search", "dynamic-programming"}},
			Solver: problem.Func1(LengthOfLIS),
		},
		{
			Meta:   problem.Meta{ID: 322, Slug: "coin-change", Title: "Coin Change", Difficulty: problem.Medium, Tags: []string{"array", "dynamic-programming", "bfs"}},
			Solver: problem.Func2(CoinChange),
		},
		{
			Meta:   problem.Meta{ID: 357, Slug: "count-numbers-with-unique-digits", Title: "Count Numbers with Unique Digits", Difficulty: problem.Medium, Tags: []string{"math", "dynamic-programming", "backtracking"}},
			Solver: problem.Func1E(CountNumbersWithUniqueDigits),
		},
		{
			Meta:   problem.Meta{ID: 902, Slug: "numbers-at-most-n-given-digit-set", Title: "Numbers At Most N Given Digit Set", Difficulty: problem.Hard, Tags: []string{"array", "math", "string", "binary-search", "digit-dp"}},
			Solver: problem.Func2E(AtMostNGivenDigitSet),
		},
		{
			Meta:   problem.Meta{ID: 1143, Slug: "longest-common-subsequence", Title: "Longest Common Subsequence", Difficulty: problem.Medium, Tags: []string{"string", "dynamic-programming"}},
			Solver: problem.Func2(LongestCommonSubsequence),
		},
	}
}
