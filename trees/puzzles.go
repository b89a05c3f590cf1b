package trees

import "math"

// IsValidBST reports whether the tree is a strict binary search tree.
func IsValidBST(root *TreeNode) bool {
	var valid func(n *TreeNode, lo, hi int64) bool
	valid = func(n *TreeNode, lo, hi int64) bool {
		if n == nil {
			return true
		}
		v := int64(n.Val)
		if v <= lo || v >= hi {
			return false
		}
		return valid(n.Left, lo, v) && valid(n.Right, v, hi)
	}

	return valid(root, math.MinInt64, math.MaxInt64)
}

// LevelOrder returns the node values level by level, left to right.
func LevelOrder(root *TreeNode) [][]int {
	out := [][]int{}
	if root == nil {
		return out
	}
	level := []*TreeNode{root}
	for len(level) > 0 {
		vals := make([]int, 0, len(level))
		var next []*TreeNode
		for _, n := range level {
			vals = append(vals, n.Val)
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		out = append(out, vals)
		level = next
	}

	return out
}

// MaxDepth returns the number of nodes on the longest root-to-leaf path.
func MaxDepth(root *TreeNode) int {
	if root == nil {
		return 0
	}

	return 1 + max(MaxDepth(root.Left), MaxDepth(root.Right))
}

// InvertTree mirrors the tree in place and returns its root.
func InvertTree(root *TreeNode) *TreeNode {
	if root == nil {
		return nil
	}
	root.Left, root.Right = InvertTree(root.Right), InvertTree(root.Left)

	return root
}

// LowestCommonAncestor returns the lowest common ancestor of p and q in a
// BST, or nil when either value is absent.
func LowestCommonAncestor(root *TreeNode, p, q int) *TreeNode {
	n := root
	for n != nil {
		switch {
		case p < n.Val && q < n.Val:
			n = n.Left
		case p > n.Val && q > n.Val:
			n = n.Right
		default:
			if bstContains(n, p) && bstContains(n, q) {
				return n
			}
			return nil
		}
	}

	return nil
}

func bstContains(n *TreeNode, v int) bool {
	for n != nil {
		switch {
		case v < n.Val:
			n = n.Left
		case v > n.Val:
			n = n.Right
		default:
			return true
		}
	}

	return false
}

// DiameterOfBinaryTree returns the number of edges on the longest path
// between any two nodes.
func DiameterOfBinaryTree(root *TreeNode) int {
	best := 0
	var height func(n *TreeNode) int
	height = func(n *TreeNode) int {
		if n == nil {
			return 0
		}
		l, r := height(n.Left), height(n.Right)
		best = max(best, l+r)
		return 1 + max(l, r)
	}
	height(root)

	return best
}
