// Package unionfind provides a disjoint-set union (DSU) and the puzzles built
// on it: counting provinces, finding the redundant edge of a tree, checking
// equality equations, and the minimum cost to connect points (Kruskal).
//
// DSU uses iterative find with path compression and union by rank, so every
// operation runs in amortised O(α(n)).
//
// Errors (sentinel):
//
//   - ErrOutOfRange  an element outside [0, n) was passed to the DSU.
package unionfind
