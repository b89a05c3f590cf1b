package arrays

import "sort"

// ContainerWithMostWater returns the largest area formed by two lines and the x-axis.
//
// Two pointers start at both ends; the shorter line is always moved inward,
// because keeping it can never produce a larger area.
//
// Complexity: O(n) time, O(1) memory.
func ContainerWithMostWater(height []int) int {
	best := 0
	for l, r := 0, len(height)-1; l < r; {
		h := min(height[l], height[r])
		if area := h * (r - l); area > best {
			best = area
		}
		if height[l] < height[r] {
			l++
		} else {
			r--
		}
	}

	return best
}

// ThreeSum returns all unique triplets that sum to zero.
// Triplets are sorted ascending internally and listed in lexicographic order.
//
// Complexity: O(n²) time, O(n) memory for the sorted copy.
func ThreeSum(nums []int) [][]int {
	a := append([]int(nil), nums...)
	sort.Ints(a)

	res := [][]int{}
	for i := 0; i < len(a)-2; i++ {
		if a[i] > 0 {
			break
		}
		if i > 0 && a[i] == a[i-1] {
			continue
		}
		l, r := i+1, len(a)-1
		for l < r {
			switch s := a[i] + a[l] + a[r]; {
			case s < 0:
				l++
			case s > 0:
				r--
			default:
				res = append(res, []int{a[i], a[l], a[r]})
				for l < r && a[l] == a[l+1] {
					l++
				}
				for l < r && a[r] == a[r-1] {
					r--
				}
				l++
				r--
			}
		}
	}

	return res
}

// MoveZeroes moves all zeros to the end of nums in place, keeping the
// relative order of the non-zero elements. The same slice is returned.
func MoveZeroes(nums []int) []int {
	w := 0
	for _, v := range nums {
		if v != 0 {
			nums[w] = v
			w++
		}
	}
	for ; w < len(nums); w++ {
		nums[w] = 0
	}

	return nums
}
