package arrays

// TwoSum returns the indices of the two numbers that add up to target.
// It returns an empty slice when no such pair exists.
//
// Complexity: O(n) time, O(n) memory.
func TwoSum(nums []int, target int) []int {
	seen := make(map[int]int, len(nums)) // value -> index
	for i, v := range nums {
		if j, ok := seen[target-v]; ok {
			return []int{j, i}
		}
		seen[v] = i
	}

	return []int{}
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers contained in nums, in O(n) expected time.
func LongestConsecutive(nums []int) int {
	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}

	best := 0
	for v := range set {
		// only start counting at the beginning of a run
		if _, ok := set[v-1]; ok {
			continue
		}
		n := 1
		for {
			if _, ok := set[v+n]; !ok {
				break
			}
			n++
		}
		if n > best {
			best = n
		}
	}

	return best
}

// SubarraySum counts contiguous subarrays whose sum equals k.
// It keeps a histogram of prefix sums seen so far.
func SubarraySum(nums []int, k int) int {
	prefix := map[int]int{0: 1}
	sum, count := 0, 0
	for _, v := range nums {
		sum += v
		count += prefix[sum-k]
		prefix[sum]++
	}

	return count
}
