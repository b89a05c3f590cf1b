package search

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 33, Slug: "search-in-rotated-sorted-array", Title: "Search in Rotated Sorted Array", Difficulty: problem.Medium, Tags: []string{"array", "binary-search"}},
			Solver: problem.Func2(SearchRotated),
		},
		{
			Meta:   problem.Meta{ID: 35, Slug: "search-insert-position", Title: "Search Insert Position", Difficulty: problem.Easy, Tags: []string{"array", "binary-search"}},
			Solver: problem.Func2(SearchInsert),
		},
		{
			Meta:   problem.Meta{ID: 153, Slug: "find-minimum-in-rotated-sorted-array", Title: "Find Minimum in Rotated Sorted Array", Difficulty: problem.Medium, Tags: []string{"array", "binary-search"}},
			Solver: problem.Func1E(FindMin),
		},
		{
			Meta:   problem.Meta{ID: 704, Slug: "binary-search", Title: "Binary Search", Difficulty: problem.Easy, Tags: []string{"array", "binary-search"}},
			Solver: problem.Func2(Search),
		},
		{
			Meta:   problem.Meta{ID: 875, Slug: "koko-eating-bananas", Title: "Koko Eating Bananas", Difficulty: problem.Medium, Tags: []string{"array", "binary-search"}},
			Solver: problem.Func2E(MinEatingSpeed),
		},
	}
}
