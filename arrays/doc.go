// Package arrays collects array puzzles solved with hashing, two pointers,
// sliding windows and prefix sums.
//
// Every function is a pure computation over its arguments: inputs are never
// mutated, except MoveZeroes which is in-place by definition.
//
// Techniques at a glance:
//
//	hashing        TwoSum, LongestConsecutive, SubarraySum (prefix-sum counts)
//	two pointers   ContainerWithMostWater, ThreeSum, MoveZeroes
//	sliding window MinSubArrayLen
//	scans          MaxSubArray (Kadane), MaxProfit, ProductExceptSelf
//
// Problems returns the catalog bindings for every puzzle in this package.
package arrays
