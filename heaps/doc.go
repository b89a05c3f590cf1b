// Package heaps solves greedy-selection puzzles with binary heaps:
// k-th order statistics, top-k by frequency or distance, the running median,
// stone smashing, string reorganisation and meeting-room allocation.
//
// Heap[T] is a small generic priority queue over container/heap. It is also
// used by other families (lists.MergeKLists, graphs.SwimInWater).
//
// Complexity of Push/Pop: O(log n).
package heaps
