// Package lists holds the linked-list puzzles.
//
// Lists use the LeetCode array encoding at the catalog boundary: [1,2,3] is
// the list 1 -> 2 -> 3 and [] is the empty (nil) list. FromSlice and ToSlice
// convert between the two; ToSlice stops after the first repeated node so a
// cyclic list never loops forever.
//
// Unless stated otherwise, functions that take lists consume them: the nodes
// of the input are relinked into the result.
package lists
