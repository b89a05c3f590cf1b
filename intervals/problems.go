package intervals

import "github.com/katalvlaran/lvpuzzle/problem"

// checked rejects malformed intervals before fn sees them.
func checked[R any](fn func([][]int) R) func([][]int) (R, error) {
	return func(iv [][]int) (R, error) {
		if err := Check(iv); err != nil {
			var zero R
			return zero, err
		}
		return fn(iv), nil
	}
}

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 56, Slug: "merge-intervals", Title: "Merge Intervals", Difficulty: problem.Medium, Tags: []string{"array", "sorting", "interval"}},
			Solver: problem.Func1E(checked(Merge)),
		},
		{
			Meta: problem.Meta{ID: 57, Slug: "insert-interval", Title: "Insert Interval", Difficulty: problem.Medium, Tags: []string{"array", "interval"}},
			Solver: problem.Func2E(func(iv [][]int, next []int) ([][]int, error) {
				if err := Check(iv); err != nil {
					return nil, err
				}
				if err := Check([][]int{next}); err != nil {
					return nil, err
				}
				return Insert(iv, next), nil
			}),
		},
		{
			Meta:   problem.Meta{ID: 252, Slug: "meeting-rooms", Title: "Meeting Rooms", Difficulty: problem.Easy, Tags: []string{"array", "sorting", "interval"}},
			Solver: problem.Func1E(checked(CanAttendMeetings)),
		},
		{
			Meta:   problem.Meta{ID: 435, Slug: "non-overlapping-intervals", Title: "Non-overlapping Intervals", Difficulty: problem.Medium, Tags: []string{"array", "greedy", "sorting", "interval"}},
			Solver: problem.Func1E(checked(EraseOverlapIntervals)),
		},
		{
			Meta:   problem.Meta{ID: 452, Slug: "minimum-number-of-arrows-to-burst-balloons", Title: "Minimum Number of Arrows to Burst Balloons", Difficulty: problem.Medium, Tags: []string{"array", "greedy", "sorting", "interval"}},
			Solver: problem.Func1E(checked(FindMinArrowShots)),
		},
	}
}
