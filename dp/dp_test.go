package dp_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/dp"
)

func TestSequences(t *testing.T) {
	assert.Equal(t, 1, dp.ClimbStairs(1))
	assert.Equal(t, 2, dp.ClimbStairs(2))
	assert.Equal(t, 3, dp.ClimbStairs(3))
	assert.Equal(t, 1836311903, dp.ClimbStairs(45))

	assert.Equal(t, 4, dp.Rob([]int{1, 2, 3, 1}))
	assert.Equal(t, 12, dp.Rob([]int{2, 7, 9, 3, 1}))
	assert.Equal(t, 0, dp.Rob(nil))

	assert.Equal(t, 3, dp.CoinChange([]int{1, 2, 5}, 11))
	assert.Equal(t, -1, dp.CoinChange([]int{2}, 3))
	assert.Equal(t, 0, dp.CoinChange([]int{1}, 0))
	assert.Equal(t, -1, dp.CoinChange([]int{1}, -5))

	assert.Equal(t, 4, dp.LengthOfLIS([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	assert.Equal(t, 4, dp.LengthOfLIS([]int{0, 1, 0, 3, 2, 3}))
	assert.Equal(t, 1, dp.LengthOfLIS([]int{7, 7, 7, 7}))

	assert.True(t, dp.WordBreak("leetcode", []string{"leet", "code"}))
	assert.True(t, dp.WordBreak("applepenapple", []string{"apple", "pen"}))
	assert.False(t, dp.WordBreak("catsandog", []string{"cats", "dog", "sand", "and", "cat"}))
}

func TestTables(t *testing.T) {
	assert.Equal(t, 28, dp.UniquePaths(3, 7))
	assert.Equal(t, 3, dp.UniquePaths(3, 2))
	assert.Equal(t, 1, dp.UniquePaths(1, 1))
	assert.Equal(t, 0, dp.UniquePaths(0, 3))

	assert.Equal(t, 3, dp.LongestCommonSubsequence("abcde", "ace"))
	assert.Equal(t, 3, dp.LongestCommonSubsequence("abc", "abc"))
	assert.Equal(t, 0, dp.LongestCommonSubsequence("abc", "def"))
}

func TestMinDistance(t *testing.T) {
	assert.Equal(t, 3, dp.MinDistance("horse", "ros"))
	assert.Equal(t, 5, dp.MinDistance("intention", "execution"))
	assert.Equal(t, 3, dp.MinDistance("", "abc"))
	assert.Equal(t, 0, dp.MinDistance("same", "same"))
}

func TestMinDistanceWith_Modes(t *testing.T) {
	full, _, err := dp.MinDistanceWith("intention", "execution", dp.WithMemoryMode(dp.FullMatrix))
	require.NoError(t, err)
	rolling, _, err := dp.MinDistanceWith("intention", "execution")
	require.NoError(t, err)
	assert.Equal(t, full, rolling)

	_, _, err = dp.MinDistanceWith("a", "b", dp.WithScript())
	assert.ErrorIs(t, err, dp.ErrScriptNeedsFullMatrix)
}

// apply replays an edit script on a and returns the result.
func apply(a, b string, script []dp.Op) string {
	var sb strings.Builder
	i, j := 0, 0
	for _, op := range script {
		switch op {
		case dp.Keep, dp.Replace:
			sb.WriteByte(b[j])
			i, j = i+1, j+1
		case dp.Insert:
			sb.WriteByte(b[j])
			j++
		case dp.Delete:
			i++
		}
	}

	return sb.String()
}

func TestMinDistanceWith_Script(t *testing.T) {
	for _, pair := range [][2]string{{"horse", "ros"}, {"intention", "execution"}, {"", "ab"}, {"ab", ""}, {"kitten", "sitting"}} {
		d, script, err := dp.MinDistanceWith(pair[0], pair[1], dp.WithMemoryMode(dp.FullMatrix), dp.WithScript())
		require.NoError(t, err)

		cost := 0
		for _, op := range script {
			if op != dp.Keep {
				cost++
			}
		}
		assert.Equal(t, d, cost, "script cost equals distance for %v", pair)
		assert.Equal(t, pair[1], apply(pair[0], pair[1], script), "script rewrites %v", pair)
	}
}

func bruteDigitOne(n int) int {
	total := 0
	for x := 0; x <= n; x++ {
		total += strings.Count(strconv.Itoa(x), "1")
	}

	return total
}

func TestCountDigitOne(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 13, 99, 100, 111, 1234, 20_000} {
		got, err := dp.CountDigitOne(n)
		require.NoError(t, err)
		assert.Equal(t, bruteDigitOne(n), got, "n=%d", n)
	}
	_, err := dp.CountDigitOne(-1)
	assert.ErrorIs(t, err, dp.ErrNegativeInput)
}

func TestCountNumbersWithUniqueDigits(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 10, 2: 91, 3: 739} {
		got, err := dp.CountNumbersWithUniqueDigits(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestAtMostNGivenDigitSet(t *testing.T) {
	tests := []struct {
		digits []string
		n      int
		want   int
	}{
		{[]string{"1", "3", "5", "7"}, 100, 20},
		{[]string{"1", "4", "9"}, 1000000000, 29523},
		{[]string{"7"}, 8, 1},
		{[]string{"3", "4", "8"}, 4, 2},
		{[]string{"1"}, 0, 0},
	}
	for _, tt := range tests {
		got, err := dp.AtMostNGivenDigitSet(tt.digits, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v %d", tt.digits, tt.n)
	}

	_, err := dp.AtMostNGivenDigitSet([]string{"0"}, 10)
	assert.Error(t, err)
}
