package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/unionfind"
)

func TestDSU(t *testing.T) {
	d := unionfind.New(6)
	assert.Equal(t, 6, d.Sets())
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Union(1, 3))
	assert.False(t, d.Union(0, 2), "already connected")
	assert.True(t, d.Connected(0, 3))
	assert.False(t, d.Connected(0, 4))
	assert.Equal(t, 3, d.Sets())
	assert.Equal(t, 6, d.Len())

	assert.NoError(t, d.Check(0, 5))
	assert.ErrorIs(t, d.Check(6), unionfind.ErrOutOfRange)
	assert.ErrorIs(t, d.Check(-1), unionfind.ErrOutOfRange)
}

func TestDSU_LongChain(t *testing.T) {
	const n = 10_000
	d := unionfind.New(n)
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}
	assert.Equal(t, 1, d.Sets())
	assert.True(t, d.Connected(0, n-1))
}

func TestFindCircleNum(t *testing.T) {
	assert.Equal(t, 2, unionfind.FindCircleNum([][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 1}}))
	assert.Equal(t, 3, unionfind.FindCircleNum([][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	assert.Equal(t, 0, unionfind.FindCircleNum(nil))
}

func TestFindRedundantConnection(t *testing.T) {
	got, err := unionfind.FindRedundantConnection([][]int{{1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	got, err = unionfind.FindRedundantConnection([][]int{{1, 2}, {2, 3}, {3, 4}, {1, 4}, {1, 5}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, got)

	_, err = unionfind.FindRedundantConnection([][]int{{1, 9}})
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)
}

func TestEquationsPossible(t *testing.T) {
	ok, err := unionfind.EquationsPossible([]string{"a==b", "b!=a"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = unionfind.EquationsPossible([]string{"b==a", "a==b"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = unionfind.EquationsPossible([]string{"a==b", "b==c", "a==c", "c!=d"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = unionfind.EquationsPossible([]string{"a=b"})
	assert.Error(t, err)
}

func TestMinCostConnectPoints(t *testing.T) {
	assert.Equal(t, 20, unionfind.MinCostConnectPoints([][]int{{0, 0}, {2, 2}, {3, 10}, {5, 2}, {7, 0}}))
	assert.Equal(t, 18, unionfind.MinCostConnectPoints([][]int{{3, 12}, {-2, 5}, {-4, 1}}))
	assert.Equal(t, 0, unionfind.MinCostConnectPoints([][]int{{0, 0}}))
}
