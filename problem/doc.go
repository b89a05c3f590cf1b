// Package problem defines the uniform contract every puzzle in lvpuzzle follows.
//
// A puzzle is a problem statement (Meta: number, slug, title, difficulty, tags)
// bound to a single entry point (Solver) that performs a deterministic, pure
// computation over in-memory arguments and returns one value.
//
// Solutions are written as ordinary typed Go functions inside their family
// package (arrays, text, graphs, ...). The adapters in this package lift those
// functions into a Solver, which accepts positional JSON arguments and returns a
// JSON-encodable result:
//
//	p := problem.Problem{
//	    Meta: problem.Meta{
//	        ID:         1,
//	        Slug:       "two-sum",
//	        Title:      "Two Sum",
//	        Difficulty: problem.Easy,
//	        Tags:       []string{"array", "hash-table"},
//	    },
//	    Solver: problem.Func2(arrays.TwoSum),
//	}
//	got, err := p.Solve([]json.RawMessage{
//	    json.RawMessage(`[2,7,11,15]`),
//	    json.RawMessage(`9`),
//	})
//	// got == []int{0, 1}
//
// Design puzzles (MinStack, Trie, LRUCache, ...) use the operation-list encoding:
// the first argument is the list of operation names, the second the list of
// argument lists. The first operation constructs the object; the result holds
// one entry per operation, null for constructors and void calls.
//
// Errors (sentinel):
//
//   - ErrArity       the number of arguments does not match the entry point.
//   - ErrDecode      an argument could not be decoded into the parameter type.
//   - ErrInvalidMeta Meta.Validate rejected the metadata.
//   - ErrUnknownOp   a design operation name is not supported.
//   - ErrNoSolver    the Problem has no entry point bound.
package problem
