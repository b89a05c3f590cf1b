package heaps

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrBadK indicates a k outside 1..len(nums).
var ErrBadK = errors.New("heaps: k out of range")

func less(a, b int) bool    { return a < b }
func greater(a, b int) bool { return a > b }

// FindKthLargest returns the k-th largest element of nums (1-based k).
// A min-heap of size k holds the k largest values seen so far.
//
// Complexity: O(n log k) time, O(k) memory.
func FindKthLargest(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, fmt.Errorf("%w: k=%d, %d numbers", ErrBadK, k, len(nums))
	}
	h := New(less)
	for _, v := range nums {
		h.Push(v)
		if h.Len() > k {
			h.Pop()
		}
	}

	return h.Peek(), nil
}

// TopKFrequent returns the k most frequent values. Ties are broken by the
// smaller value, so the result is deterministic; it is ordered by descending
// frequency.
func TopKFrequent(nums []int, k int) []int {
	freq := make(map[int]int)
	for _, v := range nums {
		freq[v]++
	}
	type entry struct{ val, n int }
	// min-heap on (n, -val): the root is the weakest candidate
	weaker := func(a, b entry) bool {
		if a.n != b.n {
			return a.n < b.n
		}
		return a.val > b.val
	}
	h := New(weaker)
	for v, n := range freq {
		h.Push(entry{v, n})
		if h.Len() > k {
			h.Pop()
		}
	}

	out := make([]int, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = h.Pop().val
	}

	return out
}

// KClosest returns the k points closest to the origin, nearest first.
// Points at equal distance are ordered by x, then y, ascending.
func KClosest(points [][]int, k int) [][]int {
	dist := func(p []int) int { return p[0]*p[0] + p[1]*p[1] }
	farther := func(a, b []int) bool {
		da, db := dist(a), dist(b)
		if da != db {
			return da > db
		}
		if a[0] != b[0] {
			return a[0] > b[0]
		}
		return a[1] > b[1]
	}
	h := New(farther)
	for _, p := range points {
		h.Push(p)
		if h.Len() > k {
			h.Pop()
		}
	}

	out := make([][]int, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		p := h.Pop()
		out[i] = []int{p[0], p[1]}
	}

	return out
}

// LastStoneWeight smashes the two heaviest stones until at most one remains
// and returns its weight (0 if none).
func LastStoneWeight(stones []int) int {
	h := From(greater, stones...)
	for h.Len() > 1 {
		y, x := h.Pop(), h.Pop()
		if y != x {
			h.Push(y - x)
		}
	}
	if h.Len() == 0 {
		return 0
	}

	return h.Peek()
}

// ReorganizeString rearranges s so that no two adjacent characters are equal,
// or returns "" when impossible. It always places the most frequent remaining
// character that differs from the previous one; ties go to the smaller byte.
func ReorganizeString(s string) string {
	var count [256]int
	for i := 0; i < len(s); i++ {
		count[s[i]]++
	}
	type entry struct {
		c byte
		n int
	}
	h := New(func(a, b entry) bool {
		if a.n != b.n {
			return a.n > b.n
		}
		return a.c < b.c
	})
	for c, n := range count {
		if n > 0 {
			h.Push(entry{byte(c), n})
		}
	}

	var sb strings.Builder
	sb.Grow(len(s))
	var held *entry // the character just written, kept out for one round
	for h.Len() > 0 {
		cur := h.Pop()
		sb.WriteByte(cur.c)
		cur.n--
		if held != nil && held.n > 0 {
			h.Push(*held)
		}
		held = &cur
	}
	if sb.Len() != len(s) {
		return ""
	}

	return sb.String()
}

// MinMeetingRooms returns the minimum number of rooms needed to hold all
// meetings [start, end). A min-heap holds the end times of rooms in use.
func MinMeetingRooms(intervals [][]int) int {
	iv := append([][]int(nil), intervals...)
	sort.Slice(iv, func(i, j int) bool { return iv[i][0] < iv[j][0] })

	ends := New(less)
	for _, m := range iv {
		if ends.Len() > 0 && ends.Peek() <= m[0] {
			ends.Pop()
		}
		ends.Push(m[1])
	}

	return ends.Len()
}
