package stacks

// DailyTemperatures returns, for each day, how many days to wait for a warmer
// temperature (0 if none).
func DailyTemperatures(temperatures []int) []int {
	out := make([]int, len(temperatures))
	stack := make([]int, 0, len(temperatures)) // indices, temperatures strictly decreasing
	for i, t := range temperatures {
		for len(stack) > 0 && temperatures[stack[len(stack)-1]] < t {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out[j] = i - j
		}
		stack = append(stack, i)
	}

	return out
}

// NextGreaterElement returns, for each element of nums1, the first greater
// element to its right in nums2, or -1. nums1 is a subset of nums2 and all
// values are distinct.
func NextGreaterElement(nums1, nums2 []int) []int {
	next := make(map[int]int, len(nums2))
	var stack []int
	for _, v := range nums2 {
		for len(stack) > 0 && stack[len(stack)-1] < v {
			next[stack[len(stack)-1]] = v
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, v)
	}

	out := make([]int, len(nums1))
	for i, v := range nums1 {
		if g, ok := next[v]; ok {
			out[i] = g
		} else {
			out[i] = -1
		}
	}

	return out
}

// LargestRectangleArea returns the area of the largest rectangle in a histogram.
//
// The stack holds bar indices with non-decreasing heights. When a lower bar
// arrives, every taller bar popped is the limiting height of a rectangle that
// spans from the new stack top (exclusive) to the current index (exclusive).
// A sentinel bar of height 0 at the end flushes the stack.
//
// Complexity: O(n) time, O(n) memory.
func LargestRectangleArea(heights []int) int {
	best := 0
	stack := make([]int, 0, len(heights)+1)
	for i := 0; i <= len(heights); i++ {
		h := 0
		if i < len(heights) {
			h = heights[i]
		}
		for len(stack) > 0 && heights[stack[len(stack)-1]] > h {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			left := -1
			if len(stack) > 0 {
				left = stack[len(stack)-1]
			}
			best = max(best, heights[top]*(i-left-1))
		}
		stack = append(stack, i)
	}

	return best
}
