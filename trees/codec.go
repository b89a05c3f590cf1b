package trees

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLevelOrder indicates a level-order slice that cannot describe a tree.
	ErrMalformedLevelOrder = errors.New("trees: malformed level order")

	// ErrValueNotFound indicates a queried value that is not in the tree.
	ErrValueNotFound = errors.New("trees: value not in tree")
)

// TreeNode is a binary tree node.
type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

// FromLevelOrder builds a tree from its level-order encoding; nil entries are
// missing nodes. An empty slice or a nil first entry yields the empty tree.
func FromLevelOrder(vals []*int) (*TreeNode, error) {
	if len(vals) == 0 || vals[0] == nil {
		if len(vals) > 1 {
			return nil, fmt.Errorf("%w: %d values under a null root", ErrMalformedLevelOrder, len(vals)-1)
		}
		return nil, nil
	}

	root := &TreeNode{Val: *vals[0]}
	queue := []*TreeNode{root}
	i := 1
	for i < len(vals) {
		if len(queue) == 0 {
			return nil, fmt.Errorf("%w: value at %d has no parent", ErrMalformedLevelOrder, i)
		}
		parent := queue[0]
		queue = queue[1:]
		if v := vals[i]; v != nil {
			parent.Left = &TreeNode{Val: *v}
			queue = append(queue, parent.Left)
		}
		i++
		if i < len(vals) {
			if v := vals[i]; v != nil {
				parent.Right = &TreeNode{Val: *v}
				queue = append(queue, parent.Right)
			}
			i++
		}
	}

	return root, nil
}

// ToLevelOrder encodes a tree in level order without trailing nulls.
func ToLevelOrder(root *TreeNode) []*int {
	out := []*int{}
	queue := []*TreeNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			out = append(out, nil)
			continue
		}
		v := n.Val
		out = append(out, &v)
		queue = append(queue, n.Left, n.Right)
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}

	return out
}

// Ints builds a level-order slice from vals, with null standing for a missing node.
func Ints(null int, vals ...int) []*int {
	out := make([]*int, len(vals))
	for i, v := range vals {
		if v != null {
			out[i] = &v
		}
	}

	return out
}

// Find returns the first node with value v in pre-order, or nil.
func Find(root *TreeNode, v int) *TreeNode {
	if root == nil || root.Val == v {
		return root
	}
	if n := Find(root.Left, v); n != nil {
		return n
	}

	return Find(root.Right, v)
}
