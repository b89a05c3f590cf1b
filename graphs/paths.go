package graphs

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpuzzle/heaps"
)

// NetworkDelayTime returns the time for a signal sent from node k to reach all
// n nodes (1-based) over directed edges times[i] = [u, v, w], or -1 if some
// node is unreachable.
//
// Steps:
//  1. Validate every edge endpoint and weight (weights must be non-negative).
//  2. Run Dijkstra from k with a lazy decrease-key heap.
//  3. The answer is the largest finite distance.
func NetworkDelayTime(times [][]int, n, k int) (int, error) {
	if k < 1 || k > n {
		return 0, fmt.Errorf("%w: source %d with %d nodes", ErrBadVertex, k, n)
	}
	adj := make([][]arc, n+1)
	for _, t := range times {
		if len(t) != 3 || t[0] < 1 || t[0] > n || t[1] < 1 || t[1] > n || t[2] < 0 {
			return 0, fmt.Errorf("%w: edge %v", ErrBadVertex, t)
		}
		adj[t[0]] = append(adj[t[0]], arc{to: t[1], w: t[2]})
	}

	r := &runner{adj: adj, dist: make([]int, n+1), visited: make([]bool, n+1)}
	r.init(k)
	r.process()

	worst := 0
	for v := 1; v <= n; v++ {
		if r.dist[v] == math.MaxInt {
			return -1, nil
		}
		worst = max(worst, r.dist[v])
	}

	return worst, nil
}

// arc is a weighted outgoing edge.
type arc struct {
	to, w int
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	adj     [][]arc
	dist    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to +∞, the source to 0 and seeds the heap.
func (r *runner) init(src int) {
	for v := range r.dist {
		r.dist[v] = math.MaxInt
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process pops the closest unvisited vertex and relaxes its arcs until the heap drains.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		for _, a := range r.adj[u] {
			if nd := r.dist[u] + a.w; nd < r.dist[a.to] {
				r.dist[a.to] = nd
				heap.Push(&r.pq, &nodeItem{id: a.to, dist: nd})
			}
		}
	}
}

// nodeItem is a vertex with its tentative distance.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// SwimInWater returns the least time t at which one can swim from the top-left
// to the bottom-right cell of an elevation grid, moving 4-directionally
// between cells whose elevation is at most t.
//
// This is a minimax path: Dijkstra where a path's cost is the maximum cell on
// it instead of the sum. The first time the target is popped its cost is final.
func SwimInWater(grid [][]int) (int, error) {
	g, err := NewGrid(grid, Conn4)
	if err != nil {
		return 0, err
	}

	type cell struct{ r, c, t int }
	pq := heaps.New(func(a, b cell) bool { return a.t < b.t })
	seen := make([]bool, g.Rows*g.Cols)
	pq.Push(cell{0, 0, grid[0][0]})
	seen[0] = true
	for pq.Len() > 0 {
		cur := pq.Pop()
		if cur.r == g.Rows-1 && cur.c == g.Cols-1 {
			return cur.t, nil
		}
		g.Neighbors(cur.r, cur.c, func(nr, nc int) {
			i := g.Index(nr, nc)
			if seen[i] {
				return
			}
			seen[i] = true
			pq.Push(cell{nr, nc, max(cur.t, grid[nr][nc])})
		})
	}

	// unreachable on a rectangular grid
	return -1, nil
}
