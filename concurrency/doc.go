// Package concurrency holds the ordering puzzles, the only part of the
// corpus that runs goroutines.
//
// Each type coordinates callers that may be scheduled in any order so that
// the observed output is fixed: Foo prints first, second, third; FooBar
// alternates foo and bar; ZeroEvenOdd prints 0 before every number. All
// coordination is done with channels; no goroutine outlives the calls that
// started it.
//
// The Run helpers (PrintInOrder, PrintFooBar, PrintZeroEvenOdd) start the
// goroutines themselves and return what was printed, which is how the
// catalog exposes these puzzles as ordinary functions.
package concurrency
