package lists

import "github.com/katalvlaran/lvpuzzle/heaps"

// AddTwoNumbers adds two non-negative numbers stored as reversed digit lists.
func AddTwoNumbers(l1, l2 *ListNode) *ListNode {
	dummy := &ListNode{}
	tail := dummy
	carry := 0
	for l1 != nil || l2 != nil || carry > 0 {
		sum := carry
		if l1 != nil {
			sum += l1.Val
			l1 = l1.Next
		}
		if l2 != nil {
			sum += l2.Val
			l2 = l2.Next
		}
		carry = sum / 10
		tail.Next = &ListNode{Val: sum % 10}
		tail = tail.Next
	}

	return dummy.Next
}

// MergeTwoLists splices two sorted lists into one sorted list. On equal
// values the node of l1 comes first.
func MergeTwoLists(l1, l2 *ListNode) *ListNode {
	dummy := &ListNode{}
	tail := dummy
	for l1 != nil && l2 != nil {
		if l2.Val < l1.Val {
			tail.Next, l2 = l2, l2.Next
		} else {
			tail.Next, l1 = l1, l1.Next
		}
		tail = tail.Next
	}
	if l1 != nil {
		tail.Next = l1
	} else {
		tail.Next = l2
	}

	return dummy.Next
}

// head of one input list, tagged with its list index for stable ties
type cursor struct {
	node *ListNode
	list int
}

// MergeKLists merges k sorted lists in O(N log k) with a min-heap of list heads.
func MergeKLists(lists []*ListNode) *ListNode {
	h := heaps.New(func(a, b cursor) bool {
		if a.node.Val != b.node.Val {
			return a.node.Val < b.node.Val
		}
		return a.list < b.list
	})
	for i, l := range lists {
		if l != nil {
			h.Push(cursor{node: l, list: i})
		}
	}

	dummy := &ListNode{}
	tail := dummy
	for h.Len() > 0 {
		c := h.Pop()
		tail.Next = c.node
		tail = tail.Next
		if c.node.Next != nil {
			h.Push(cursor{node: c.node.Next, list: c.list})
		}
	}
	tail.Next = nil

	return dummy.Next
}

// HasCycle reports whether the list loops, using Floyd's tortoise and hare.
func HasCycle(head *ListNode) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}

// ReverseList reverses the list in place and returns the new head.
func ReverseList(head *ListNode) *ListNode {
	var prev *ListNode
	for head != nil {
		head.Next, prev, head = prev, head, head.Next
	}

	return prev
}

// MiddleNode returns the second middle node for lists of even length.
func MiddleNode(head *ListNode) *ListNode {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}
