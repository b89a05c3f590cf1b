// Package text solves string puzzles: sliding windows over runes and bytes,
// center expansion, parsing, and prefix-function (Knuth–Morris–Pratt) matching.
//
// PrefixFunction is exported because two puzzles share it:
//
//	pi[i] = length of the longest proper prefix of s[:i+1] that is also its suffix
//
// LongestHappyPrefix is pi[len(s)-1] read back as a string; StrStr runs the
// classic KMP scan of the haystack using pi of the needle.
//
// Complexity of both: O(n + m) time, O(m) memory.
package text
