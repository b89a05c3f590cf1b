package text

import (
	"math"
	"sort"
	"strings"
)

// LengthOfLongestSubstring returns the length of the longest substring of s
// without repeating characters. Characters are bytes, matching the puzzle's
// ASCII input domain.
func LengthOfLongestSubstring(s string) int {
	var last [256]int // last index+1 of each byte; 0 means unseen
	best, start := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if last[c] > start {
			start = last[c]
		}
		last[c] = i + 1
		best = max(best, i-start+1)
	}

	return best
}

// LongestPalindrome returns the longest palindromic substring of s.
// On ties the leftmost one wins.
//
// Complexity: O(n²) center expansion, O(1) extra memory.
func LongestPalindrome(s string) string {
	if s == "" {
		return ""
	}
	lo, hi := 0, 0
	expand := func(l, r int) {
		for l >= 0 && r < len(s) && s[l] == s[r] {
			l--
			r++
		}
		// s[l+1:r] is the palindrome
		if r-l-1 > hi-lo+1 {
			lo, hi = l+1, r-1
		}
	}
	for c := 0; c < len(s); c++ {
		expand(c, c)
		expand(c, c+1)
	}

	return s[lo : hi+1]
}

// MyAtoi converts s to a 32-bit signed integer the way C's atoi does:
// skip leading spaces, read an optional sign, read digits, clamp on overflow.
func MyAtoi(s string) int {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if sign*n > math.MaxInt32 {
			return math.MaxInt32
		}
		if sign*n < math.MinInt32 {
			return math.MinInt32
		}
	}

	return sign * n
}

// LongestCommonPrefix returns the longest prefix shared by every string in strs.
func LongestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	prefix := strs[0]
	for _, s := range strs[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			break
		}
	}

	return prefix
}

// IsAnagram reports whether t is a permutation of s.
func IsAnagram(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	var count [256]int
	for i := 0; i < len(s); i++ {
		count[s[i]]++
		count[t[i]]--
	}
	for _, c := range count {
		if c != 0 {
			return false
		}
	}

	return true
}

// GroupAnagrams groups strs by anagram class.
// Groups are listed in order of first appearance and keep input order inside.
func GroupAnagrams(strs []string) [][]string {
	index := make(map[string]int)
	groups := [][]string{}
	for _, s := range strs {
		key := sortedKey(s)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}

	return groups
}

func sortedKey(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	return string(b)
}
