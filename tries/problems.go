package tries

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 208, Slug: "implement-trie-prefix-tree", Title: "Implement Trie (Prefix Tree)", Difficulty: problem.Medium, Tags: []string{"hash-table", "string", "design", "trie"}},
			Solver: problem.Design(problem.NoArgs(trieInstance)),
		},
		{
			Meta:   problem.Meta{ID: 211, Slug: "design-add-and-search-words-data-structure", Title: "Design Add and Search Words Data Structure", Difficulty: problem.Medium, Tags: []string{"string", "dfs", "design", "trie"}},
			Solver: problem.Design(problem.NoArgs(dictionaryInstance)),
		},
		{
			Meta:   problem.Meta{ID: 648, Slug: "replace-words", Title: "Replace Words", Difficulty: problem.Medium, Tags: []string{"array", "hash-table", "string", "trie"}},
			Solver: problem.Func2E(ReplaceWords),
		},
		{
			Meta:   problem.Meta{ID: 720, Slug: "longest-word-in-dictionary", Title: "Longest Word in Dictionary", Difficulty: problem.Medium, Tags: []string{"array", "hash-table", "string", "trie", "sorting"}},
			Solver: problem.Func1E(LongestWord),
		},
	}
}

func trieInstance() problem.Instance {
	t := NewTrie()

	return problem.Methods{
		"insert": problem.Func1E(func(w string) (any, error) {
			return nil, t.Insert(w)
		}),
		"search":     problem.Func1(t.Search),
		"startsWith": problem.Func1(t.StartsWith),
	}
}

func dictionaryInstance() problem.Instance {
	d := NewWordDictionary()

	return problem.Methods{
		"addWord": problem.Func1E(func(w string) (any, error) {
			return nil, d.AddWord(w)
		}),
		"search": problem.Func1(d.Search),
	}
}
