package lists_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/lists"
)

func TestFromSliceToSlice(t *testing.T) {
	assert.Nil(t, lists.FromSlice(nil))
	assert.Equal(t, []int{}, lists.ToSlice(nil))
	assert.Equal(t, []int{1, 2, 3}, lists.ToSlice(lists.FromSlice([]int{1, 2, 3})))

	// a cyclic list is cut at the first repeated node
	assert.Equal(t, []int{3, 2, 0, -4}, lists.ToSlice(lists.WithCycle([]int{3, 2, 0, -4}, 1)))
}

func TestAddTwoNumbers(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"342+465", []int{2, 4, 3}, []int{5, 6, 4}, []int{7, 0, 8}},
		{"zeros", []int{0}, []int{0}, []int{0}},
		{"carry chain", []int{9, 9, 9, 9, 9, 9, 9}, []int{9, 9, 9, 9}, []int{8, 9, 9, 9, 0, 0, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := lists.AddTwoNumbers(lists.FromSlice(tc.a), lists.FromSlice(tc.b))
			assert.Equal(t, tc.want, lists.ToSlice(got))
		})
	}
}

func TestMerge(t *testing.T) {
	got := lists.MergeTwoLists(lists.FromSlice([]int{1, 2, 4}), lists.FromSlice([]int{1, 3, 4}))
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4}, lists.ToSlice(got))
	assert.Nil(t, lists.MergeTwoLists(nil, nil))
	assert.Equal(t, []int{0}, lists.ToSlice(lists.MergeTwoLists(nil, lists.FromSlice([]int{0}))))

	k := []*lists.ListNode{
		lists.FromSlice([]int{1, 4, 5}),
		lists.FromSlice([]int{1, 3, 4}),
		lists.FromSlice([]int{2, 6}),
	}
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4, 5, 6}, lists.ToSlice(lists.MergeKLists(k)))
	assert.Nil(t, lists.MergeKLists(nil))
	assert.Nil(t, lists.MergeKLists([]*lists.ListNode{nil}))
}

func TestHasCycle(t *testing.T) {
	assert.True(t, lists.HasCycle(lists.WithCycle([]int{3, 2, 0, -4}, 1)))
	assert.True(t, lists.HasCycle(lists.WithCycle([]int{1, 2}, 0)))
	assert.False(t, lists.HasCycle(lists.WithCycle([]int{1}, -1)))
	assert.False(t, lists.HasCycle(nil))
}

func TestReverseAndMiddle(t *testing.T) {
	assert.Equal(t, []int{5, 4, 3, 2, 1}, lists.ToSlice(lists.ReverseList(lists.FromSlice([]int{1, 2, 3, 4, 5}))))
	assert.Nil(t, lists.ReverseList(nil))

	assert.Equal(t, []int{3, 4, 5}, lists.ToSlice(lists.MiddleNode(lists.FromSlice([]int{1, 2, 3, 4, 5}))))
	assert.Equal(t, []int{4, 5, 6}, lists.ToSlice(lists.MiddleNode(lists.FromSlice([]int{1, 2, 3, 4, 5, 6}))))
}

func TestLRUCache(t *testing.T) {
	_, err := lists.NewLRUCache(0)
	require.ErrorIs(t, err, lists.ErrCapacity)

	c, err := lists.NewLRUCache(2)
	require.NoError(t, err)
	c.Put(1, 1)
	c.Put(2, 2)
	assert.Equal(t, 1, c.Get(1))
	c.Put(3, 3) // evicts 2
	assert.Equal(t, -1, c.Get(2))
	c.Put(4, 4) // evicts 1
	assert.Equal(t, -1, c.Get(1))
	assert.Equal(t, 3, c.Get(3))
	assert.Equal(t, 4, c.Get(4))
	assert.Equal(t, []int{4, 3}, c.Keys())

	c.Put(3, 30)
	assert.Equal(t, []int{3, 4}, c.Keys())
	assert.Equal(t, 2, c.Len())
}

func TestLRUCache_Design(t *testing.T) {
	var lru = lists.Problems()[4]
	require.Equal(t, 146, lru.ID)

	got, err := lru.Solve([]json.RawMessage{
		json.RawMessage(`["LRUCache","put","put","get","put","get","put","get","get","get"]`),
		json.RawMessage(`[[2],[1,1],[2,2],[1],[3,3],[2],[4,4],[1],[3],[4]]`),
	})
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, nil, 1, nil, -1, nil, -1, 3, 4}, got)
}
