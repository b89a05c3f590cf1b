package stacks

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 20, Slug: "valid-parentheses", Title: "Valid Parentheses", Difficulty: problem.Easy, Tags: []string{"string", "stack"}},
			Solver: problem.Func1(IsValid),
		},
		{
			Meta:   problem.Meta{ID: 84, Slug: "largest-rectangle-in-histogram", Title: "Largest Rectangle in Histogram", Difficulty: problem.Hard, Tags: []string{"array", "stack", "monotonic-stack"}},
			Solver: problem.Func1(LargestRectangleArea),
		},
		{
			Meta:   problem.Meta{ID: 150, Slug: "evaluate-reverse-polish-notation", Title: "Evaluate Reverse Polish Notation", Difficulty: problem.Medium, Tags: []string{"array", "math", "stack"}},
			Solver: problem.Func1E(EvalRPN),
		},
		{
			Meta:   problem.Meta{ID: 155, Slug: "min-stack", Title: "Min Stack", Difficulty: problem.Medium, Tags: []string{"stack", "design"}},
			Solver: problem.Design(problem.NoArgs(minStackInstance)),
		},
		{
			Meta:   problem.Meta{ID: 394, Slug: "decode-string", Title: "Decode String", Difficulty: problem.Medium, Tags: []string{"string", "stack", "recursion"}},
			Solver: problem.Func1(DecodeString),
		},
		{
			Meta:   problem.Meta{ID: 496, Slug: "next-greater-element-i", Title: "Next Greater Element I", Difficulty: problem.Easy, Tags: []string{"array", "hash-table", "stack", "monotonic-stack"}},
			Solver: problem.Func2(NextGreaterElement),
		},
		{
			Meta:   problem.Meta{ID: 735, Slug: "asteroid-collision", Title: "Asteroid Collision", Difficulty: problem.Medium, Tags: []string{"array", "stack", "simulation"}},
			Solver: problem.Func1(AsteroidCollision),
		},
		{
			Meta:   problem.Meta{ID: 739, Slug: "daily-temperatures", Title: "Daily Temperatures", Difficulty: problem.Medium, Tags: []string{"array", "stack", "monotonic-stack"}},
			Solver: problem.Func1(DailyTemperatures),
		},
	}
}

func minStackInstance() problem.Instance {
	s := NewMinStack()

	return problem.Methods{
		"push":   problem.Action1(s.Push),
		"pop":    problem.Action0E(s.Pop),
		"top":    problem.Func0E(s.Top),
		"getMin": problem.Func0E(s.GetMin),
	}
}
