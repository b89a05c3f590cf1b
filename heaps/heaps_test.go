package heaps_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/heaps"
)

func TestHeap_Order(t *testing.T) {
	h := heaps.From(func(a, b int) bool { return a < b }, 5, 3, 8, 1, 9, 2)
	h.Push(0)
	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop())
	}
	assert.True(t, sort.IntsAreSorted(got))
	assert.Equal(t, []int{0, 1, 2, 3, 5, 8, 9}, got)
}

func TestFindKthLargest(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		k    int
		want int
	}{
		{"example 1", []int{3, 2, 1, 5, 6, 4}, 2, 5},
		{"duplicates", []int{3, 2, 3, 1, 2, 4, 5, 5, 6}, 4, 4},
		{"single", []int{1}, 1, 1},
		{"smallest", []int{4, 1, 3}, 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := heaps.FindKthLargest(tc.nums, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, k := range []int{0, -1, 4} {
		_, err := heaps.FindKthLargest([]int{4, 1, 3}, k)
		assert.ErrorIs(t, err, heaps.ErrBadK, "k=%d", k)
	}
	_, err := heaps.FindKthLargest(nil, 1)
	assert.ErrorIs(t, err, heaps.ErrBadK)
}

func TestTopKFrequent(t *testing.T) {
	assert.Equal(t, []int{1, 2}, heaps.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2))
	assert.Equal(t, []int{1}, heaps.TopKFrequent([]int{1}, 1))
	// tie between 2 and 3 goes to the smaller value
	assert.Equal(t, []int{1, 2}, heaps.TopKFrequent([]int{3, 2, 1, 1}, 2))
}

func TestKClosest(t *testing.T) {
	assert.Equal(t, [][]int{{-2, 2}}, heaps.KClosest([][]int{{1, 3}, {-2, 2}}, 1))
	assert.Equal(t, [][]int{{3, 3}, {-2, 4}}, heaps.KClosest([][]int{{3, 3}, {5, -1}, {-2, 4}}, 2))
	assert.Equal(t, [][]int{{-1, 0}, {0, -1}, {0, 1}}, heaps.KClosest([][]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}, 3), "ties by coordinates")
}

func TestLastStoneWeight(t *testing.T) {
	assert.Equal(t, 1, heaps.LastStoneWeight([]int{2, 7, 4, 1, 8, 1}))
	assert.Equal(t, 0, heaps.LastStoneWeight([]int{2, 2}))
	assert.Equal(t, 0, heaps.LastStoneWeight(nil))
}

func TestReorganizeString(t *testing.T) {
	assert.Equal(t, "aba", heaps.ReorganizeString("aab"))
	assert.Equal(t, "", heaps.ReorganizeString("aaab"))

	got := heaps.ReorganizeString("vvvlo")
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i], got)
	}
}

func TestMinMeetingRooms(t *testing.T) {
	assert.Equal(t, 2, heaps.MinMeetingRooms([][]int{{0, 30}, {5, 10}, {15, 20}}))
	assert.Equal(t, 1, heaps.MinMeetingRooms([][]int{{7, 10}, {2, 4}}))
	assert.Equal(t, 0, heaps.MinMeetingRooms(nil))
	assert.Equal(t, 1, heaps.MinMeetingRooms([][]int{{1, 5}, {5, 10}}), "touching meetings share a room")
}

func TestMedianFinder(t *testing.T) {
	m := heaps.NewMedianFinder()
	_, err := m.FindMedian()
	assert.ErrorIs(t, err, heaps.ErrNoData)

	m.AddNum(1)
	m.AddNum(2)
	got, err := m.FindMedian()
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	m.AddNum(3)
	got, _ = m.FindMedian()
	assert.Equal(t, 2.0, got)
}

func TestMedianFinder_Design(t *testing.T) {
	var p = heaps.Problems()[2]
	require.Equal(t, "find-median-from-data-stream", p.Slug)
	got, err := p.Solve([]json.RawMessage{
		json.RawMessage(`["MedianFinder","addNum","addNum","findMedian","addNum","findMedian"]`),
		json.RawMessage(`[[],[1],[2],[],[3],[]]`),
	})
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, nil, 1.5, nil, 2.0}, got)
}
