package trees

import (
	"fmt"

	"github.com/katalvlaran/lvpuzzle/problem"
)

// Problems returns the catalog bindings for this package.
func Problems() []problem.Problem {
	return []problem.Problem{
		{
			Meta:   problem.Meta{ID: 98, Slug: "validate-binary-search-tree", Title: "Validate Binary Search Tree", Difficulty: problem.Medium, Tags: []string{"tree", "dfs", "binary-search-tree", "binary-tree"}},
			Solver: problem.Func1E(onTree(IsValidBST)),
		},
		{
			Meta:   problem.Meta{ID: 102, Slug: "binary-tree-level-order-traversal", Title: "Binary Tree Level Order Traversal", Difficulty: problem.Medium, Tags: []string{"tree", "bfs", "binary-tree"}},
			Solver: problem.Func1E(onTree(LevelOrder)),
		},
		{
			Meta:   problem.Meta{ID: 104, Slug: "maximum-depth-of-binary-tree", Title: "Maximum Depth of Binary Tree", Difficulty: problem.Easy, Tags: []string{"tree", "dfs", "bfs", "binary-tree"}},
			Solver: problem.Func1E(onTree(MaxDepth)),
		},
		{
			Meta: problem.Meta{ID: 226, Slug: "invert-binary-tree", Title: "Invert Binary Tree", Difficulty: problem.Easy, Tags: []string{"tree", "dfs", "bfs", "binary-tree"}},
			Solver: problem.Func1E(onTree(func(root *TreeNode) []*int {
				return ToLevelOrder(InvertTree(root))
			})),
		},
		{
			Meta: problem.Meta{ID: 235, Slug: "lowest-common-ancestor-of-a-binary-search-tree", Title: "Lowest Common Ancestor of a Binary Search Tree", Difficulty: problem.Medium, Tags: []string{"tree", "dfs", "binary-search-tree", "binary-tree"}},
			Solver: problem.Func3E(func(vals []*int, p, q int) (int, error) {
				root, err := FromLevelOrder(vals)
				if err != nil {
					return 0, err
				}
				n := LowestCommonAncestor(root, p, q)
				if n == nil {
					return 0, fmt.Errorf("%w: %d or %d", ErrValueNotFound, p, q)
				}
				return n.Val, nil
			}),
		},
		{
			Meta:   problem.Meta{ID: 543, Slug: "diameter-of-binary-tree", Title: "Diameter of Binary Tree", Difficulty: problem.Easy, Tags: []string{"tree", "dfs", "binary-tree"}},
			Solver: problem.Func1E(onTree(DiameterOfBinaryTree)),
		},
	}
}

// onTree decodes the level-order argument before calling fn.
func onTree[R any](fn func(*TreeNode) R) func([]*int) (R, error) {
	return func(vals []*int) (R, error) {
		root, err := FromLevelOrder(vals)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(root), nil
	}
}
