// Package lvpuzzle is a corpus of algorithm puzzles, each a small pure
// function with a problem header (number, title, difficulty, tags).
//
// What is inside?
//
//	A library of solutions grouped by technique, one package each:
//		• arrays       – hashing, two pointers, sliding window, prefix sums
//		• text         – string scanning, KMP prefix function
//		• stacks       – stack simulation, monotonic stacks, MinStack
//		• heaps        – generic binary heap, top-k, running median
//		• intervals    – merging, insertion, greedy scheduling
//		• unionfind    – disjoint-set union, Kruskal
//		• graphs       – grid BFS, topological order, Dijkstra
//		• dp           – sequences, tables, edit distance, digit DP
//		• tries        – prefix trees, wildcard dictionary
//		• lists        – linked lists, LRU cache
//		• trees        – binary trees and the level-order codec
//		• search       – binary search, search over the answer
//		• concurrency  – goroutine ordering puzzles
//
// How is it wired?
//
//   - problem: the uniform contract. A Problem binds Meta to a Solver that
//     takes positional JSON arguments; adapters lift typed functions and
//     design puzzles (operation lists) into Solvers.
//   - catalog: looks puzzles up by number or slug and filters by tag or
//     difficulty. catalog.Default() holds the whole corpus.
//   - judge: runs YAML/JSONC case files in parallel with per-case timeouts
//     and reports AC/WA/RTE/TLE/IER verdicts; it can watch a directory.
//   - cmd/lvpuzzle: the command line (list, show, solve, judge).
//
// Quick start:
//
//	go run ./cmd/lvpuzzle solve two-sum '[[2,7,11,15], 9]'
//	go run ./cmd/lvpuzzle judge cases
//
// Every solution can also be called directly:
//
//	idx := arrays.TwoSum([]int{2, 7, 11, 15}, 9) // [0 1]
package lvpuzzle
