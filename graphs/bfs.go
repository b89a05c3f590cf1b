package graphs

// NumIslands counts 4-connected regions of '1' cells.
func NumIslands(grid [][]byte) (int, error) {
	g, err := NewGrid(grid, Conn4)
	if err != nil {
		return 0, err
	}

	return len(g.Components(func(b byte) bool { return b == '1' })), nil
}

// OrangesRotting returns the minutes until no fresh orange (1) remains, given
// that every rotten orange (2) rots its 4-neighbors each minute; -1 if some
// fresh orange can never rot.
func OrangesRotting(grid [][]int) (int, error) {
	g, err := NewGrid(grid, Conn4)
	if err != nil {
		return 0, err
	}

	state := make([]int, g.Rows*g.Cols)
	var frontier []int
	fresh := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			state[g.Index(r, c)] = grid[r][c]
			switch grid[r][c] {
			case 1:
				fresh++
			case 2:
				frontier = append(frontier, g.Index(r, c))
			}
		}
	}

	minutes := 0
	for len(frontier) > 0 && fresh > 0 {
		var next []int
		for _, i := range frontier {
			r, c := g.Coordinate(i)
			g.Neighbors(r, c, func(nr, nc int) {
				j := g.Index(nr, nc)
				if state[j] == 1 {
					state[j] = 2
					fresh--
					next = append(next, j)
				}
			})
		}
		frontier = next
		minutes++
	}
	if fresh > 0 {
		return -1, nil
	}

	return minutes, nil
}

// ShortestPathBinaryMatrix returns the number of cells on the shortest
// 8-connected path of 0-cells from the top-left to the bottom-right corner,
// or -1 if there is none.
func ShortestPathBinaryMatrix(grid [][]int) (int, error) {
	g, err := NewGrid(grid, Conn8)
	if err != nil {
		return 0, err
	}
	if grid[0][0] != 0 || grid[g.Rows-1][g.Cols-1] != 0 {
		return -1, nil
	}

	dist := make([]int, g.Rows*g.Cols) // 0 = unvisited, otherwise path length
	dist[0] = 1
	target := g.Index(g.Rows-1, g.Cols-1)
	queue := []int{0}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return dist[u], nil
		}
		r, c := g.Coordinate(u)
		g.Neighbors(r, c, func(nr, nc int) {
			v := g.Index(nr, nc)
			if dist[v] == 0 && grid[nr][nc] == 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		})
	}

	return -1, nil
}
