package arrays

import "math"

// MaxSubArray returns the largest sum of a non-empty contiguous subarray (Kadane).
// An empty input yields 0.
func MaxSubArray(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	best, cur := nums[0], nums[0]
	for _, v := range nums[1:] {
		cur = max(v, cur+v)
		best = max(best, cur)
	}

	return best
}

// MaxProfit returns the best profit from one buy followed by one sell.
func MaxProfit(prices []int) int {
	low, best := math.MaxInt, 0
	for _, p := range prices {
		low = min(low, p)
		best = max(best, p-low)
	}

	return best
}

// ProductExceptSelf returns out where out[i] is the product of every element
// except nums[i], without division: a left pass of prefix products followed
// by a right pass of suffix products.
func ProductExceptSelf(nums []int) []int {
	out := make([]int, len(nums))
	acc := 1
	for i := range nums {
		out[i] = acc
		acc *= nums[i]
	}
	acc = 1
	for i := len(nums) - 1; i >= 0; i-- {
		out[i] *= acc
		acc *= nums[i]
	}

	return out
}

// MinSubArrayLen returns the minimal length of a contiguous subarray with
// sum >= target, or 0 if there is none. nums holds positive integers.
// Subarrays are non-empty, so any single element meets a target <= 0.
//
// Complexity: O(n) sliding window.
func MinSubArrayLen(target int, nums []int) int {
	best := math.MaxInt
	sum := 0
	for l, r := 0, 0; r < len(nums); r++ {
		sum += nums[r]
		for l <= r && sum >= target {
			best = min(best, r-l+1)
			sum -= nums[l]
			l++
		}
	}
	if best == math.MaxInt {
		return 0
	}

	return best
}
