package graphs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/graphs"
)

func bytesGrid(rows ...string) [][]byte {
	out := make([][]byte, len(rows))
	for i, r := range rows {
		out[i] = []byte(r)
	}

	return out
}

func TestNewGrid_Validation(t *testing.T) {
	_, err := graphs.NewGrid([][]int{}, graphs.Conn4)
	assert.ErrorIs(t, err, graphs.ErrEmptyGrid)

	_, err = graphs.NewGrid([][]int{{}}, graphs.Conn4)
	assert.ErrorIs(t, err, graphs.ErrEmptyGrid)

	_, err = graphs.NewGrid([][]int{{1, 2}, {3}}, graphs.Conn4)
	assert.ErrorIs(t, err, graphs.ErrNonRectangular)
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := graphs.NewGrid([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, graphs.Conn8)
	require.NoError(t, err)

	count := func(r, c int) int {
		n := 0
		g.Neighbors(r, c, func(int, int) { n++ })
		return n
	}
	assert.Equal(t, 8, count(1, 1))
	assert.Equal(t, 3, count(0, 0))

	r, c := g.Coordinate(g.Index(2, 1))
	assert.Equal(t, [2]int{2, 1}, [2]int{r, c})
}

func TestNumIslands(t *testing.T) {
	n, err := graphs.NumIslands(bytesGrid("11110", "11010", "11000", "00000"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = graphs.NumIslands(bytesGrid("11000", "11000", "00100", "00011"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = graphs.NumIslands(nil)
	assert.ErrorIs(t, err, graphs.ErrEmptyGrid)
}

func TestNumIslands_Problem(t *testing.T) {
	p := graphs.Problems()[0]
	got, err := p.Solve([]json.RawMessage{json.RawMessage(`[["1","0"],["0","1"]]`)})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestOrangesRotting(t *testing.T) {
	tests := []struct {
		grid [][]int
		want int
	}{
		{[][]int{{2, 1, 1}, {1, 1, 0}, {0, 1, 1}}, 4},
		{[][]int{{2, 1, 1}, {0, 1, 1}, {1, 0, 1}}, -1},
		{[][]int{{0, 2}}, 0},
		{[][]int{{0}}, 0},
		{[][]int{{1}}, -1},
	}
	for _, tt := range tests {
		got, err := graphs.OrangesRotting(tt.grid)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v", tt.grid)
	}
}

func TestShortestPathBinaryMatrix(t *testing.T) {
	got, err := graphs.ShortestPathBinaryMatrix([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, _ = graphs.ShortestPathBinaryMatrix([][]int{{0, 0, 0}, {1, 1, 0}, {1, 1, 0}})
	assert.Equal(t, 4, got)

	got, _ = graphs.ShortestPathBinaryMatrix([][]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 0}})
	assert.Equal(t, -1, got)

	got, _ = graphs.ShortestPathBinaryMatrix([][]int{{0}})
	assert.Equal(t, 1, got)
}

func TestCourseSchedule(t *testing.T) {
	ok, err := graphs.CanFinish(2, [][]int{{1, 0}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = graphs.CanFinish(2, [][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.False(t, ok)

	order, err := graphs.FindOrder(4, [][]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, order)

	order, err = graphs.FindOrder(3, [][]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{}, order)

	order, err = graphs.FindOrder(1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, order)

	order, err = graphs.FindOrder(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, order, "the last root's subtree comes first")

	_, err = graphs.FindOrder(2, [][]int{{5, 0}})
	assert.ErrorIs(t, err, graphs.ErrBadVertex)
}

func TestNetworkDelayTime(t *testing.T) {
	got, err := graphs.NetworkDelayTime([][]int{{2, 1, 1}, {2, 3, 1}, {3, 4, 1}}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = graphs.NetworkDelayTime([][]int{{1, 2, 1}}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = graphs.NetworkDelayTime([][]int{{1, 2, 5}, {1, 3, 1}, {3, 2, 1}}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got, "relaxation finds the cheaper detour")

	_, err = graphs.NetworkDelayTime([][]int{{1, 2, -1}}, 2, 1)
	assert.ErrorIs(t, err, graphs.ErrBadVertex)
	_, err = graphs.NetworkDelayTime(nil, 2, 3)
	assert.ErrorIs(t, err, graphs.ErrBadVertex)
}

func TestSwimInWater(t *testing.T) {
	got, err := graphs.SwimInWater([][]int{{0, 2}, {1, 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = graphs.SwimInWater([][]int{
		{0, 1, 2, 3, 4},
		{24, 23, 22, 21, 5},
		{12, 13, 14, 15, 16},
		{11, 17, 18, 19, 20},
		{10, 9, 8, 7, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 16, got)

	got, _ = graphs.SwimInWater([][]int{{7}})
	assert.Equal(t, 7, got)
}
