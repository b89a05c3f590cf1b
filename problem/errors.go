package problem

import "errors"

// Sentinel errors returned by the problem contract.
var (
	// ErrArity indicates a wrong number of positional arguments.
	ErrArity = errors.New("problem: wrong number of arguments")

	// ErrDecode indicates an argument could not be decoded into the parameter type.
	ErrDecode = errors.New("problem: cannot decode argument")

	// ErrInvalidMeta indicates malformed problem metadata.
	ErrInvalidMeta = errors.New("problem: invalid metadata")

	// ErrUnknownOp indicates a design operation that the object does not support.
	ErrUnknownOp = errors.New("problem: unknown operation")

	// ErrNoSolver indicates a Problem without an entry point.
	ErrNoSolver = errors.New("problem: no solver bound")
)
