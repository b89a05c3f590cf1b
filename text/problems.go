package text

import "github.com/katalvlaran/lvpuzzle/problem"

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 3, Slug: "longest-substring-without-repeating-characters", Title: "Longest Substring Without Repeating Characters", Difficulty: problem.Medium, Tags: []string{"string", "sliding-window", "hash-table"}},
			Solver: problem.Func1(LengthOfLongestSubstring),
		},
		{
			Meta:   problem.Meta{ID: 5, Slug: "longest-palindromic-substring", Title: "Longest Palindromic Substring", Difficulty: problem.Medium, Tags: []string{"string", "two-pointers"}},
			Solver: problem.Func1(LongestPalindrome),
		},
		{
			Meta:   problem.Meta{ID: 8, Slug: "string-to-integer-atoi", Title: "String to Integer (atoi)", Difficulty: problem.Medium, Tags: []string{"string"}},
			Solver: problem.Func1(MyAtoi),
		},
		{
			Meta:   problem.Meta{ID: 14, Slug: "longest-common-prefix", Title: "Longest Common Prefix", Difficulty: problem.Easy, Tags: []string{"string"}},
			Solver: problem.Func1(LongestCommonPrefix),
		},
		{
			Meta:   problem.Meta{ID: 28, Slug: "find-the-index-of-the-first-occurrence-in-a-string", Title: "Find the Index of the First Occurrence in a String", Difficulty: problem.Easy, Tags: []string{"string", "string-matching"}},
			Solver: problem.Func2(StrStr),
		},
		{
			Meta:      problem.Meta{ID: 49, Slug: "group-anagrams", Title: "Group Anagrams", Difficulty: problem.Medium, Tags: []string{"string", "hash-table", "sorting"}},
			Unordered: true,
			Nested:    true,
			Solver:    problem.Func1(GroupAnagrams),
		},
		{
			Meta:   problem.Meta{ID: 242, Slug: "valid-anagram", Title: "Valid Anagram", Difficulty: problem.Easy, Tags: []string{"string", "hash-table"}},
			Solver: problem.Func2(IsAnagram),
		},
		{
			Meta:   problem.Meta{ID: 1392, Slug: "longest-happy-prefix", Title: "Longest Happy Prefix", Difficulty: problem.Hard, Tags: []string{"string", "string-matching", "kmp"}},
			Solver: problem.Func1(LongestHappyPrefix),
		},
	}
}
