package lists

// ListNode is a node of a singly linked list.
type ListNode struct {
	Val  int
	Next *ListNode
}

// FromSlice builds a list holding vals in order. It returns nil for no values.
func FromSlice(vals []int) *ListNode {
	dummy := &ListNode{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &ListNode{Val: v}
		tail = tail.Next
	}

	return dummy.Next
}

// ToSlice returns the values of the list. The result is never nil.
func ToSlice(head *ListNode) []int {
	out := []int{}
	seen := make(map[*ListNode]bool)
	for n := head; n != nil && !seen[n]; n = n.Next {
		seen[n] = true
		out = append(out, n.Val)
	}

	return out
}

// WithCycle builds a list from vals whose tail links back to the node at
// index pos. A pos outside [0, len(vals)) yields an acyclic list.
func WithCycle(vals []int, pos int) *ListNode {
	head := FromSlice(vals)
	if pos < 0 || pos >= len(vals) {
		return head
	}

	var target, tail *ListNode
	for i, n := 0, head; n != nil; i, n = i+1, n.Next {
		if i == pos {
			target = n
		}
		tail = n
	}
	tail.Next = target

	return head
}
