// Package search implements the binary-search puzzles: plain lookup, the
// insert position, rotated sorted arrays, and binary search over an answer
// space (the smallest eating speed that finishes in time).
//
// Every search keeps a half-open or closed interval invariant and shrinks it
// by half per step, so all lookups run in O(log n).
package search

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates an operation that needs at least one element.
var ErrEmpty = errors.New("search: empty input")

// Search returns the index of target in sorted nums, or -1.
func Search(nums []int, target int) int {
	lo, hi := 0, len(nums)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case nums[mid] == target:
			return mid
		case nums[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// SearchInsert returns the index of target in sorted nums, or the index where
// it would be inserted to keep the order.
func SearchInsert(nums []int, target int) int {
	lo, hi := 0, len(nums)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// FindMin returns the minimum of a rotated sorted array of distinct values.
func FindMin(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmpty
	}
	lo, hi := 0, len(nums)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] > nums[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return nums[lo], nil
}

// SearchRotated returns the index of target in a rotated sorted array of
// distinct values, or -1.
func SearchRotated(nums []int, target int) int {
	lo, hi := 0, len(nums)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if nums[mid] == target {
			return mid
		}
		if nums[lo] <= nums[mid] {
			// left half sorted
			if nums[lo] <= target && target < nums[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			if nums[mid] < target && target <= nums[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}

	return -1
}

// MinEatingSpeed returns the smallest integer speed k at which all piles are
// eaten within h hours, one pile per hour at most k bananas.
func MinEatingSpeed(piles []int, h int) (int, error) {
	if len(piles) == 0 {
		return 0, ErrEmpty
	}
	if h < len(piles) {
		return 0, fmt.Errorf("search: %d hours cannot cover %d piles", h, len(piles))
	}

	hi := 1
	for _, p := range piles {
		if p <= 0 {
			return 0, fmt.Errorf("search: pile of %d bananas", p)
		}
		hi = max(hi, p)
	}

	lo := 1
	for lo < hi {
		k := lo + (hi-lo)/2
		if hours(piles, k) <= h {
			hi = k
		} else {
			lo = k + 1
		}
	}

	return lo, nil
}

func hours(piles []int, k int) int {
	total := 0
	for _, p := range piles {
		total += (p + k - 1) / k
	}

	return total
}
