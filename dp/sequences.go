package dp

import (
	"math"
	"sort"
)

// ClimbStairs returns the number of ways to climb n steps taking 1 or 2 at a time.
func ClimbStairs(n int) int {
	a, b := 1, 1 // ways(i-1), ways(i)
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}

	return b
}

// Rob returns the maximum loot from houses in a row without robbing two
// adjacent houses.
func Rob(nums []int) int {
	skip, take := 0, 0
	for _, v := range nums {
		skip, take = max(skip, take), skip+v
	}

	return max(skip, take)
}

// CoinChange returns the fewest coins that sum to amount, or -1.
//
// Complexity: O(amount · len(coins)) time, O(amount) memory.
func CoinChange(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}
	const inf = math.MaxInt32
	best := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		best[a] = inf
		for _, c := range coins {
			if c > 0 && c <= a && best[a-c] != inf {
				best[a] = min(best[a], best[a-c]+1)
			}
		}
	}
	if best[amount] == inf {
		return -1
	}

	return best[amount]
}

// LengthOfLIS returns the length of the longest strictly increasing subsequence.
//
// tails[i] is the smallest tail of any increasing subsequence of length i+1;
// it stays sorted, so each element is placed by binary search.
//
// Complexity: O(n log n).
func LengthOfLIS(nums []int) int {
	tails := make([]int, 0, len(nums))
	for _, v := range nums {
		i := sort.SearchInts(tails, v)
		if i == len(tails) {
			tails = append(tails, v)
		} else {
			tails[i] = v
		}
	}

	return len(tails)
}

// WordBreak reports whether s can be segmented into words from wordDict.
func WordBreak(s string, wordDict []string) bool {
	dict := make(map[string]struct{}, len(wordDict))
	longest := 0
	for _, w := range wordDict {
		dict[w] = struct{}{}
		longest = max(longest, len(w))
	}

	ok := make([]bool, len(s)+1) // ok[i]: s[:i] can be segmented
	ok[0] = true
	for i := 1; i <= len(s); i++ {
		for j := max(0, i-longest); j < i && !ok[i]; j++ {
			if ok[j] {
				_, ok[i] = dict[s[j:i]]
			}
		}
	}

	return ok[len(s)]
}
