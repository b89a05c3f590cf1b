// Package dp solves dynamic-programming puzzles: one-dimensional recurrences
// (stairs, robbery, coins, word break, LIS), two-dimensional tables (paths,
// LCS, edit distance) and digit DP over the decimal representation of a bound
// (counting digit ones, numbers with unique digits, numbers built from a
// digit set).
//
// MinDistance supports two memory modes, selected with functional options:
//
//   - FullMatrix   keeps the whole (n+1)×(m+1) table and can return the
//     edit script.
//   - RollingArray keeps two rows only, O(min(n, m)) memory, distance only.
//
// Errors (sentinel):
//
//   - ErrScriptNeedsFullMatrix  WithScript was combined with RollingArray.
//   - ErrNegativeInput          a count or bound that must be non-negative was negative.
package dp
