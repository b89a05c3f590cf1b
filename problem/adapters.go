package problem

import (
	"encoding/json"
	"fmt"
)

// Decode unmarshals the i-th positional argument into a value of type T.
func Decode[T any](args []json.RawMessage, i int) (T, error) {
	var v T
	if i < 0 || i >= len(args) {
		return v, fmt.Errorf("%w: argument %d of %d", ErrArity, i, len(args))
	}
	if err := json.Unmarshal(args[i], &v); err != nil {
		return v, fmt.Errorf("%w: argument %d as %T: %v", ErrDecode, i, v, err)
	}

	return v, nil
}

// Arity returns ErrArity unless len(args) == n.
func Arity(args []json.RawMessage, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, n, len(args))
	}

	return nil
}

// Func0 lifts a nullary function.
func Func0[R any](fn func() R) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 0); err != nil {
			return nil, err
		}

		return fn(), nil
	}
}

// Func1 lifts func(A) R into a Solver.
func Func1[A, R any](fn func(A) R) Solver {
	return Func1E(func(a A) (R, error) { return fn(a), nil })
}

// Func1E lifts func(A) (R, error) into a Solver.
func Func1E[A, R any](fn func(A) (R, error)) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 1); err != nil {
			return nil, err
		}
		a, err := Decode[A](args, 0)
		if err != nil {
			return nil, err
		}

		return fn(a)
	}
}

// Func2 lifts func(A, B) R into a Solver.
func Func2[A, B, R any](fn func(A, B) R) Solver {
	return Func2E(func(a A, b B) (R, error) { return fn(a, b), nil })
}

// Func2E lifts func(A, B) (R, error) into a Solver.
func Func2E[A, B, R any](fn func(A, B) (R, error)) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 2); err != nil {
			return nil, err
		}
		a, err := Decode[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := Decode[B](args, 1)
		if err != nil {
			return nil, err
		}

		return fn(a, b)
	}
}

// Func3 lifts func(A, B, C) R into a Solver.
func Func3[A, B, C, R any](fn func(A, B, C) R) Solver {
	return Func3E(func(a A, b B, c C) (R, error) { return fn(a, b, c), nil })
}

// Func3E lifts func(A, B, C) (R, error) into a Solver.
func Func3E[A, B, C, R any](fn func(A, B, C) (R, error)) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 3); err != nil {
			return nil, err
		}
		a, err := Decode[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := Decode[B](args, 1)
		if err != nil {
			return nil, err
		}
		c, err := Decode[C](args, 2)
		if err != nil {
			return nil, err
		}

		return fn(a, b, c)
	}
}

// Action0 lifts a void nullary method; its result is null.
func Action0(fn func()) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 0); err != nil {
			return nil, err
		}
		fn()

		return nil, nil
	}
}

// Action1 lifts a void method of one argument; its result is null.
func Action1[A any](fn func(A)) Solver {
	return Func1(func(a A) any {
		fn(a)

		return nil
	})
}

// Action2 lifts a void method of two arguments; its result is null.
func Action2[A, B any](fn func(A, B)) Solver {
	return Func2(func(a A, b B) any {
		fn(a, b)

		return nil
	})
}

// Func0E lifts a nullary function that may fail.
func Func0E[R any](fn func() (R, error)) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 0); err != nil {
			return nil, err
		}

		return fn()
	}
}

// Action0E lifts a void nullary method that may fail; its result is null.
func Action0E(fn func() error) Solver {
	return func(args []json.RawMessage) (any, error) {
		if err := Arity(args, 0); err != nil {
			return nil, err
		}

		return nil, fn()
	}
}
