// Package judge runs per-puzzle input/output cases against the catalog.
//
// A Suite names one problem (by number or slug) and lists Cases: positional
// arguments, the expected answer, and optionally whether the answer is an
// unordered collection or whether the puzzle is expected to reject the
// input. Suites are read from YAML (.yaml, .yml) or JSON with comments and
// trailing commas (.json, .jsonc).
//
// Judge.Run executes every case of every suite in parallel, bounded by
// Options.Parallelism, and guards each case with Options.Timeout. Each case
// gets a Verdict:
//
//	AC  – accepted: the answer equals the expected one.
//	WA  – wrong answer.
//	RTE – runtime error: the puzzle returned an error or panicked.
//	TLE – the case did not finish within the timeout.
//	IER – internal error: the suite or case is unusable (unknown problem,
//	      arguments that cannot be encoded, run cancelled).
//
// Comparison normalises both sides through JSON, so []int{1,2} equals the
// YAML list [1, 2], and uses deep equality with a small tolerance on floats.
// Unordered answers are compared as multisets of their top-level elements;
// problems marked Nested also ignore order inside those elements.
//
// Judge.Watch re-runs a directory of suites whenever one of its suite files
// changes, until the context is cancelled.
//
// Example suite (YAML):
//
//	problem: two-sum
//	cases:
//	  - name: example 1
//	    args: [[2, 7, 11, 15], 9]
//	    want: [0, 1]
package judge
