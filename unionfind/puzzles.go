package unionfind

import (
	"fmt"
	"sort"
)

// FindCircleNum returns the number of provinces in the adjacency matrix
// isConnected (isConnected[i][j] == 1 means cities i and j are directly linked).
func FindCircleNum(isConnected [][]int) int {
	d := New(len(isConnected))
	for i, row := range isConnected {
		for j := i + 1; j < len(row); j++ {
			if row[j] == 1 {
				d.Union(i, j)
			}
		}
	}

	return d.Sets()
}

// FindRedundantConnection returns the last edge of edges whose removal leaves
// a tree on the nodes 1..n. Vertices are 1-based.
func FindRedundantConnection(edges [][]int) ([]int, error) {
	d := New(len(edges) + 1)
	for _, e := range edges {
		if err := d.Check(e[0], e[1]); err != nil {
			return nil, err
		}
		if !d.Union(e[0], e[1]) {
			return []int{e[0], e[1]}, nil
		}
	}

	return []int{}, nil
}

// EquationsPossible reports whether single-letter variable equations like
// "a==b" and "b!=c" can all hold at once. Equalities are unioned first, then
// every inequality must span two different sets.
func EquationsPossible(equations []string) (bool, error) {
	d := New(26)
	for _, eq := range equations {
		if len(eq) != 4 || eq[0] < 'a' || eq[0] > 'z' || eq[3] < 'a' || eq[3] > 'z' {
			return false, fmt.Errorf("unionfind: malformed equation %q", eq)
		}
		if eq[1] == '=' {
			d.Union(int(eq[0]-'a'), int(eq[3]-'a'))
		}
	}
	for _, eq := range equations {
		if eq[1] == '!' && d.Connected(int(eq[0]-'a'), int(eq[3]-'a')) {
			return false, nil
		}
	}

	return true, nil
}

// MinCostConnectPoints returns the minimum total Manhattan distance needed to
// connect every point, i.e. the weight of a minimum spanning tree of the
// complete graph on points.
//
// Steps (Kruskal):
//  1. Enumerate every pair (i, j) with its Manhattan distance.
//  2. Sort pairs by ascending distance (stable, so ties keep enumeration order).
//  3. Union endpoints of each pair whose endpoints are still disjoint,
//     accumulating the weight, until n-1 edges are taken.
//
// Complexity: O(n² log n) time, O(n²) memory.
func MinCostConnectPoints(points [][]int) int {
	n := len(points)
	if n < 2 {
		return 0
	}
	type edge struct{ u, v, w int }
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := abs(points[i][0]-points[j][0]) + abs(points[i][1]-points[j][1])
			edges = append(edges, edge{i, j, w})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].w < edges[b].w })

	d := New(n)
	total, taken := 0, 0
	for _, e := range edges {
		if d.Union(e.u, e.v) {
			total += e.w
			if taken++; taken == n-1 {
				break
			}
		}
	}

	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
