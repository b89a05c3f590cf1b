package unionfind

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 547, Slug: "number-of-provinces", Title: "Number of Provinces", Difficulty: problem.Medium, Tags: []string{"graph", "union-find", "dfs"}},
			Solver: problem.Func1(FindCircleNum),
		},
		{
			Meta:   problem.Meta{ID: 684, Slug: "redundant-connection", Title: "Redundant Connection", Difficulty: problem.Medium, Tags: []string{"graph", "union-find"}},
			Solver: problem.Func1E(FindRedundantConnection),
		},
		{
			Meta:   problem.Meta{ID: 990, Slug: "satisfiability-of-equality-equations", Title: "Satisfiability of Equality Equations", Difficulty: problem.Medium, Tags: []string{"string", "graph", "union-find"}},
			Solver: problem.Func1E(EquationsPossible),
		},
		{
			Meta:   problem.Meta{ID: 1584, Slug: "min-cost-to-connect-all-points", Title: "Min Cost to Connect All Points", Difficulty: problem.Medium, Tags: []string{"graph", "union-find", "minimum-spanning-tree"}},
			Solver: problem.Func1(MinCostConnectPoints),
		},
	}
}
