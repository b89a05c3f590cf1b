package concurrency

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 1114, Slug: "print-in-order", Title: "Print in Order", Difficulty: problem.Easy, Tags: []string{"concurrency"}},
			Solver: problem.Func1E(PrintInOrder),
		},
		{
			Meta:   problem.Meta{ID: 1115, Slug: "print-foobar-alternately", Title: "Print FooBar Alternately", Difficulty: problem.Medium, Tags: []string{"concurrency"}},
			Solver: problem.Func1E(PrintFooBar),
		},
		{
			Meta:   problem.Meta{ID: 1116, Slug: "print-zero-even-odd", Title: "Print Zero Even Odd", Difficulty: problem.Medium, Tags: []string{"concurrency"}},
			Solver: problem.Func1E(PrintZeroEvenOdd),
		},
	}
}
