package lists

import (
	"encoding/json"

	"github.com/katalvlaran/lvpuzzle/problem"
)

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta: problem.Meta{ID: 2, Slug: "add-two-numbers", Title: "Add Two Numbers", Difficulty: problem.Medium, Tags: []string{"linked-list", "math", "recursion"}},
			Solver: problem.Func2(func(a, b []int) []int {
				return ToSlice(AddTwoNumbers(FromSlice(a), FromSlice(b)))
			}),
		},
		{
			Meta: problem.Meta{ID: 21, Slug: "merge-two-sorted-lists", Title: "Merge Two Sorted Lists", Difficulty: problem.Easy, Tags: []string{"linked-list", "recursion"}},
			Solver: problem.Func2(func(a, b []int) []int {
				return ToSlice(MergeTwoLists(FromSlice(a), FromSlice(b)))
			}),
		},
		{
			Meta: problem.Meta{ID: 23, Slug: "merge-k-sorted-lists", Title: "Merge k Sorted Lists", Difficulty: problem.Hard, Tags: []string{"linked-list", "divide-and-conquer", "heap"}},
			Solver: problem.Func1(func(in [][]int) []int {
				ls := make([]*ListNode, len(in))
				for i, vals := range in {
					ls[i] = FromSlice(vals)
				}
				return ToSlice(MergeKLists(ls))
			}),
		},
		{
			Meta: problem.Meta{ID: 141, Slug: "linked-list-cycle", Title: "Linked List Cycle", Difficulty: problem.Easy, Tags: []string{"hash-table", "linked-list", "two-pointers"}},
			Solver: problem.Func2(func(vals []int, pos int) bool {
				return HasCycle(WithCycle(vals, pos))
			}),
		},
		{
			Meta:   problem.Meta{ID: 146, Slug: "lru-cache", Title: "LRU Cache", Difficulty: problem.Medium, Tags: []string{"hash-table", "linked-list", "design", "doubly-linked-list"}},
			Solver: problem.Design(lruInstance),
		},
		{
			Meta: problem.Meta{ID: 206, Slug: "reverse-linked-list", Title: "Reverse Linked List", Difficulty: problem.Easy, Tags: []string{"linked-list", "recursion"}},
			Solver: problem.Func1(func(vals []int) []int {
				return ToSlice(ReverseList(FromSlice(vals)))
			}),
		},
		{
			Meta: problem.Meta{ID: 876, Slug: "middle-of-the-linked-list", Title: "Middle of the Linked List", Difficulty: problem.Easy, Tags: []string{"linked-list", "two-pointers"}},
			Solver: problem.Func1(func(vals []int) []int {
				return ToSlice(MiddleNode(FromSlice(vals)))
			}),
		},
	}
}

func lruInstance(args []json.RawMessage) (problem.Instance, error) {
	if err := problem.Arity(args, 1); err != nil {
		return nil, err
	}
	capacity, err := problem.Decode[int](args, 0)
	if err != nil {
		return nil, err
	}
	c, err := NewLRUCache(capacity)
	if err != nil {
		return nil, err
	}

	return problem.Methods{
		"get": problem.Func1(c.Get),
		"put": problem.Action2(c.Put),
	}, nil
}
