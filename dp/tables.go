package dp

// UniquePaths returns the number of right/down paths across an m×n grid.
func UniquePaths(m, n int) int {
	if m <= 0 || n <= 0 {
		return 0
	}
	row := make([]int, n)
	for j := range row {
		row[j] = 1
	}
	for i := 1; i < m; i++ {
		for j := 1; j < n; j++ {
			row[j] += row[j-1]
		}
	}

	return row[n-1]
}

// LongestCommonSubsequence returns the length of the longest common
// subsequence of text1 and text2, using a rolling row.
func LongestCommonSubsequence(text1, text2 string) int {
	if len(text2) > len(text1) {
		text1, text2 = text2, text1
	}
	prev := make([]int, len(text2)+1)
	cur := make([]int, len(text2)+1)
	for i := 1; i <= len(text1); i++ {
		for j := 1; j <= len(text2); j++ {
			if text1[i-1] == text2[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}

	return prev[len(text2)]
}
