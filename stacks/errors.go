package stacks

import "errors"

var (
	// ErrMalformedExpression indicates an RPN token stream that does not reduce to one value.
	ErrMalformedExpression = errors.New("stacks: malformed RPN expression")

	// ErrEmptyStack indicates a read from an empty MinStack.
	ErrEmptyStack = errors.New("stacks: stack is empty")
)
