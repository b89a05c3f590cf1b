// Package trees holds the binary-tree puzzles and the LeetCode level-order
// codec they are exchanged in.
//
// In level order, [3,9,20,null,null,15,7] is the tree
//
//	  3
//	 / \
//	9  20
//	   / \
//	  15  7
//
// null marks a missing child; children of missing nodes are not listed and
// trailing nulls are dropped.
package trees
