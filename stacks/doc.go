// Package stacks solves puzzles driven by an explicit stack: bracket matching,
// expression evaluation, nested decoding, collision simulation, and monotonic
// stacks (next greater element, daily temperatures, largest rectangle).
//
// A monotonic stack keeps indices whose values are strictly ordered; each
// index is pushed and popped at most once, so every scan here is O(n).
//
// MinStack is a design puzzle: Push, Pop, Top and GetMin all run in O(1).
//
// Errors (sentinel):
//
//   - ErrMalformedExpression  EvalRPN received an ill-formed token stream.
//   - ErrEmptyStack           MinStack Pop/Top/GetMin on an empty stack.
package stacks
