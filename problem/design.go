package problem

import (
	"encoding/json"
	"fmt"
)

// Instance is a live object of a design puzzle.
type Instance interface {
	Call(op string, args []json.RawMessage) (any, error)
}

// Methods dispatches design operations by name.
type Methods map[string]Solver

// Call invokes the method named op.
func (m Methods) Call(op string, args []json.RawMessage) (any, error) {
	fn, ok := m[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}

	return fn(args)
}

// Constructor builds a fresh Instance from the constructor's arguments.
type Constructor func(args []json.RawMessage) (Instance, error)

// Design lifts a design puzzle into a Solver.
//
// Input: args[0] is the list of operation names, args[1] the list of argument
// lists, both of equal length. ops[0] is the constructor call and is not
// dispatched by name. The result has one entry per operation; constructors and
// void methods yield nil.
func Design(ctor Constructor) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 2); err != nil {
			return nil, err
		}
		ops, err := Decode[[]string](args, 0)
		if err != nil {
			return nil, err
		}
		calls, err := Decode[[][]json.RawMessage](args, 1)
		if err != nil {
			return nil, err
		}
		if len(ops) == 0 || len(ops) != len(calls) {
			return nil, fmt.Errorf("%w: %d operations with %d argument lists", ErrArity, len(ops), len(calls))
		}

		obj, err := ctor(calls[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ops[0], err)
		}
		out := make([]any, len(ops))
		for i := 1; i < len(ops); i++ {
			res, err := obj.Call(ops[i], calls[i])
			if err != nil {
				return nil, fmt.Errorf("operation %d (%s): %w", i, ops[i], err)
			}
			out[i] = res
		}

		return out, nil
	}
}

// NoArgs is a Constructor helper for types built without arguments.
func NoArgs(build func() Instance) Constructor {
	return func(args []json.RawMessage) (Instance, error) {
		if err := Arity(args, 0); err != nil {
			return nil, err
		}

		return build(), nil
	}
}
