package dp

import (
	"fmt"
	"strconv"
)

// decimalDigits returns the decimal digits of n >= 0, most significant first.
func decimalDigits(n int) []int {
	s := strconv.Itoa(n)
	ds := make([]int, len(s))
	for i := range s {
		ds[i] = int(s[i] - '0')
	}

	return ds
}

// CountDigitOne returns the total number of digit 1 appearing in all
// integers from 0 to n inclusive.
//
// Digit DP over the positions of n: state (pos, ones so far, tight), where
// tight means the prefix equals n's prefix so the next digit is capped.
// Non-tight states are memoised.
//
// Complexity: O(d² · 10) for d = number of digits.
func CountDigitOne(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNegativeInput, n)
	}
	ds := decimalDigits(n)
	memo := make([][]int, len(ds))
	for i := range memo {
		memo[i] = make([]int, len(ds)+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}

	var count func(pos, ones int, tight bool) int
	count = func(pos, ones int, tight bool) int {
		if pos == len(ds) {
			return ones
		}
		if !tight && memo[pos][ones] >= 0 {
			return memo[pos][ones]
		}
		limit := 9
		if tight {
			limit = ds[pos]
		}
		total := 0
		for d := 0; d <= limit; d++ {
			next := ones
			if d == 1 {
				next++
			}
			total += count(pos+1, next, tight && d == limit)
		}
		if !tight {
			memo[pos][ones] = total
		}

		return total
	}

	return count(0, 0, true), nil
}

// CountNumbersWithUniqueDigits returns how many x with 0 <= x < 10^n have no
// repeated decimal digit.
func CountNumbersWithUniqueDigits(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNegativeInput, n)
	}
	if n == 0 {
		return 1, nil
	}
	total, run := 10, 9 // run: unique numbers with exactly k digits
	for k := 2; k <= min(n, 10); k++ {
		run *= 11 - k
		total += run
	}

	return total, nil
}

// AtMostNGivenDigitSet returns how many positive integers <= n can be written
// using only the given digits (each a single character '1'..'9', distinct,
// each usable any number of times).
//
// Numbers shorter than n are free: D^k for every length k below len(n).
// Numbers of n's length are counted digit by digit while the prefix stays
// equal to n's prefix.
func AtMostNGivenDigitSet(digits []string, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNegativeInput, n)
	}
	var have [10]bool
	for _, d := range digits {
		if len(d) != 1 || d[0] < '1' || d[0] > '9' {
			return 0, fmt.Errorf("dp: digit %q is not in 1..9", d)
		}
		have[d[0]-'0'] = true
	}
	set := 0
	for _, ok := range have {
		if ok {
			set++
		}
	}
	if n == 0 || set == 0 {
		return 0, nil
	}

	ds := decimalDigits(n)
	pow := make([]int, len(ds)+1) // pow[k] = set^k
	pow[0] = 1
	for k := 1; k <= len(ds); k++ {
		pow[k] = pow[k-1] * set
	}

	total := 0
	for k := 1; k < len(ds); k++ {
		total += pow[k]
	}
	for i, nd := range ds {
		smaller := 0
		for d := 1; d < nd; d++ {
			if have[d] {
				smaller++
			}
		}
		total += smaller * pow[len(ds)-i-1]
		if !have[nd] {
			return total, nil
		}
	}

	// n itself is representable
	return total + 1, nil
}
