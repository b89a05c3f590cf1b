package graphs

import (
	"fmt"

	"github.com/katalvlaran/lvpuzzle/problem"
)

// byteGrid converts the JSON encoding of a character grid ([["1","0"],...])
// into bytes.
func byteGrid(cells [][]string) ([][]byte, error) {
	out := make([][]byte, len(cells))
	for r, row := range cells {
		out[r] = make([]byte, len(row))
		for c, s := range row {
			if len(s) != 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %q", problem.ErrDecode, r, c, s)
			}
			out[r][c] = s[0]
		}
	}

	return out, nil
}

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta: problem.Meta{ID: 200, Slug: "number-of-islands", Title: "Number of Islands", Difficulty: problem.Medium, Tags: []string{"array", "bfs", "dfs", "union-find", "matrix"}},
			Solver: problem.Func1E(func(cells [][]string) (int, error) {
				grid, err := byteGrid(cells)
				if err != nil {
					return 0, err
				}
				return NumIslands(grid)
			}),
		},
		{
			Meta:   problem.Meta{ID: 207, Slug: "course-schedule", Title: "Course Schedule", Difficulty: problem.Medium, Tags: []string{"graph", "dfs", "topological-sort"}},
			Solver: problem.Func2E(CanFinish),
		},
		{
			Meta:   problem.Meta{ID: 210, Slug: "course-schedule-ii", Title: "Course Schedule II", Difficulty: problem.Medium, Tags: []string{"graph", "dfs", "topological-sort"}},
			Solver: problem.Func2E(FindOrder),
		},
		{
			Meta:   problem.Meta{ID: 743, Slug: "network-delay-time", Title: "Network Delay Time", Difficulty: problem.Medium, Tags: []string{"graph", "heap", "shortest-path"}},
			Solver: problem.Func3E(NetworkDelayTime),
		},
		{
			Meta:   problem.Meta{ID: 778, Slug: "swim-in-rising-water", Title: "Swim in Rising Water", Difficulty: problem.Hard, Tags: []string{"array", "heap", "shortest-path", "matrix"}},
			Solver: problem.Func1E(SwimInWater),
		},
		{
			Meta:   problem.Meta{ID: 994, Slug: "rotting-oranges", Title: "Rotting Oranges", Difficulty: problem.Medium, Tags: []string{"array", "bfs", "matrix"}},
			Solver: problem.Func1E(OrangesRotting),
		},
		{
			Meta:   problem.Meta{ID: 1091, Slug: "shortest-path-in-binary-matrix", Title: "Shortest Path in Binary Matrix", Difficulty: problem.Medium, Tags: []string{"array", "bfs", "matrix"}},
			Solver: problem.Func1E(ShortestPathBinaryMatrix),
		},
	}
}
