package text

// PrefixFunction returns the KMP failure table of s.
func PrefixFunction(s string) []int {
	pi := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		k := pi[i-1]
		for k > 0 && s[i] != s[k] {
			k = pi[k-1]
		}
		if s[i] == s[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// LongestHappyPrefix returns the longest non-empty prefix of s that is also a
// suffix (excluding s itself), or "" when none exists.
func LongestHappyPrefix(s string) string {
	if s == "" {
		return ""
	}
	pi := PrefixFunction(s)

	return s[:pi[len(s)-1]]
}

// StrStr returns the index of the first occurrence of needle in haystack,
// or -1. An empty needle matches at 0.
func StrStr(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	pi := PrefixFunction(needle)
	k := 0
	for i := 0; i < len(haystack); i++ {
		for k > 0 && haystack[i] != needle[k] {
			k = pi[k-1]
		}
		if haystack[i] == needle[k] {
			k++
		}
		if k == len(needle) {
			return i - k + 1
		}
	}

	return -1
}
