package heaps

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 215, Slug: "kth-largest-element-in-an-array", Title: "Kth Largest Element in an Array", Difficulty: problem.Medium, Tags: []string{"array", "heap", "quickselect"}},
			Solver: problem.Func2E(FindKthLargest),
		},
		{
			Meta:   problem.Meta{ID: 253, Slug: "meeting-rooms-ii", Title: "Meeting Rooms II", Difficulty: problem.Medium, Tags: []string{"array", "heap", "sorting", "interval"}},
			Solver: problem.Func1(MinMeetingRooms),
		},
		{
			Meta:   problem.Meta{ID: 295, Slug: "find-median-from-data-stream", Title: "Find Median from Data Stream", Difficulty: problem.Hard, Tags: []string{"heap", "design", "data-stream"}},
			Solver: problem.Design(problem.NoArgs(medianFinderInstance)),
		},
		{
			Meta:      problem.Meta{ID: 347, Slug: "top-k-frequent-elements", Title: "Top K Frequent Elements", Difficulty: problem.Medium, Tags: []string{"array", "hash-table", "heap"}},
			Unordered: true,
			Solver:    problem.Func2(TopKFrequent),
		},
		{
			Meta:   problem.Meta{ID: 767, Slug: "reorganize-string", Title: "Reorganize String", Difficulty: problem.Medium, Tags: []string{"string", "greedy", "heap"}},
			Solver: problem.Func1(ReorganizeString),
		},
		{
			Meta:      problem.Meta{ID: 973, Slug: "k-closest-points-to-origin", Title: "K Closest Points to Origin", Difficulty: problem.Medium, Tags: []string{"array", "math", "heap"}},
			Unordered: true,
			Solver:    problem.Func2(KClosest),
		},
		{
			Meta:   problem.Meta{ID: 1046, Slug: "last-stone-weight", Title: "Last Stone Weight", Difficulty: problem.Easy, Tags: []string{"array", "heap"}},
			Solver: problem.Func1(LastStoneWeight),
		},
	}
}

func medianFinderInstance() problem.Instance {
	m := NewMedianFinder()

	return problem.Methods{
		"addNum":     problem.Action1(m.AddNum),
		"findMedian": problem.Func0E(m.FindMedian),
	}
}
