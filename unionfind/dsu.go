package unionfind

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an element index outside [0, n).
var ErrOutOfRange = errors.New("unionfind: element out of range")

// DSU is a disjoint-set forest over the elements 0..n-1.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a DSU with n singleton sets.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of x's set.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		// path halving: point x at its grandparent
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }

// Check returns ErrOutOfRange unless every element lies in [0, Len()).
func (d *DSU) Check(xs ...int) error {
	for _, x := range xs {
		if x < 0 || x >= len(d.parent) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent))
		}
	}

	return nil
}
