// Package intervals solves interval merging and scheduling puzzles.
//
// An interval is a two-element slice [start, end] with start <= end.
// Inputs are never mutated; functions that need sorted input sort a copy.
//
// Scheduling puzzles (EraseOverlapIntervals, FindMinArrowShots) use the
// classic greedy choice: sort by end and keep the interval that finishes first.
package intervals

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedInterval indicates an interval that is not [start, end] with start <= end.
var ErrMalformedInterval = errors.New("intervals: malformed interval")

// Check validates every interval in iv.
func Check(iv [][]int) error {
	for i, x := range iv {
		if len(x) != 2 || x[0] > x[1] {
			return fmt.Errorf("%w: #%d %v", ErrMalformedInterval, i, x)
		}
	}

	return nil
}

func sortedBy(iv [][]int, key int) [][]int {
	out := make([][]int, len(iv))
	for i, x := range iv {
		out[i] = []int{x[0], x[1]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i][key] < out[j][key] })

	return out
}

// Merge merges all overlapping intervals (touching ones included) and returns
// them sorted by start.
func Merge(iv [][]int) [][]int {
	res := [][]int{}
	for _, x := range sortedBy(iv, 0) {
		if n := len(res); n > 0 && x[0] <= res[n-1][1] {
			res[n-1][1] = max(res[n-1][1], x[1])
			continue
		}
		res = append(res, x)
	}

	return res
}

// Insert inserts next into iv, which is sorted by start and non-overlapping,
// merging where necessary.
func Insert(iv [][]int, next []int) [][]int {
	res := make([][]int, 0, len(iv)+1)
	lo, hi := next[0], next[1]
	i := 0
	for ; i < len(iv) && iv[i][1] < lo; i++ {
		res = append(res, []int{iv[i][0], iv[i][1]})
	}
	for ; i < len(iv) && iv[i][0] <= hi; i++ {
		lo = min(lo, iv[i][0])
		hi = max(hi, iv[i][1])
	}
	res = append(res, []int{lo, hi})
	for ; i < len(iv); i++ {
		res = append(res, []int{iv[i][0], iv[i][1]})
	}

	return res
}

// EraseOverlapIntervals returns the minimum number of intervals to remove so
// that the rest do not overlap. Touching intervals do not overlap.
func EraseOverlapIntervals(iv [][]int) int {
	if len(iv) == 0 {
		return 0
	}
	s := sortedBy(iv, 1)
	kept, end := 1, s[0][1]
	for _, x := range s[1:] {
		if x[0] >= end {
			kept++
			end = x[1]
		}
	}

	return len(iv) - kept
}

// FindMinArrowShots returns the minimum number of vertical arrows that burst
// every balloon [xstart, xend]; touching balloons share an arrow.
func FindMinArrowShots(points [][]int) int {
	if len(points) == 0 {
		return 0
	}
	s := sortedBy(points, 1)
	arrows, pos := 1, s[0][1]
	for _, x := range s[1:] {
		if x[0] > pos {
			arrows++
			pos = x[1]
		}
	}

	return arrows
}

// CanAttendMeetings reports whether one person can attend every meeting
// [start, end); back-to-back meetings are fine.
func CanAttendMeetings(iv [][]int) bool {
	s := sortedBy(iv, 0)
	for i := 1; i < len(s); i++ {
		if s[i][0] < s[i-1][1] {
			return false
		}
	}

	return true
}
