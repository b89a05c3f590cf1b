package graphs

// Connectivity selects neighbor connectivity on a grid.
type Connectivity int

const (
	// Conn4 uses the four orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Grid is a rectangular view over a 2D slice of T.
// It does not copy the cells; callers own the backing slice.
type Grid[T any] struct {
	Rows, Cols int
	Cells      [][]T
	offsets    [][2]int
}

// NewGrid validates cells and wraps them.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func NewGrid[T any](cells [][]T, conn Connectivity) (*Grid[T], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{Rows: len(cells), Cols: cols, Cells: cells, offsets: offsets4}
	if conn == Conn8 {
		g.offsets = offsets8
	}

	return g, nil
}

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Index maps (r, c) to its row-major index.
func (g *Grid[T]) Index(r, c int) int { return r*g.Cols + c }

// Coordinate maps a row-major index back to (r, c).
func (g *Grid[T]) Coordinate(i int) (int, int) { return i / g.Cols, i % g.Cols }

// Neighbors calls fn for every in-bounds neighbor of (r, c).
func (g *Grid[T]) Neighbors(r, c int, fn func(nr, nc int)) {
	for _, d := range g.offsets {
		nr, nc := r+d[0], c+d[1]
		if g.InBounds(nr, nc) {
			fn(nr, nc)
		}
	}
}

// Components returns the connected regions of cells for which keep is true.
// Each component lists row-major indices in BFS discovery order; components
// are ordered by their first cell in row-major order.
func (g *Grid[T]) Components(keep func(T) bool) [][]int {
	seen := make([]bool, g.Rows*g.Cols)
	var comps [][]int
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			i0 := g.Index(r, c)
			if seen[i0] || !keep(g.Cells[r][c]) {
				continue
			}
			seen[i0] = true
			queue := []int{i0}
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				g.Neighbors(ur, uc, func(nr, nc int) {
					vi := g.Index(nr, nc)
					if !seen[vi] && keep(g.Cells[nr][nc]) {
						seen[vi] = true
						queue = append(queue, vi)
					}
				})
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
