package judge

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// floats within this margin compare equal (e.g. medians)
const floatMargin = 1e-5

var cmpOpts = []cmp.Option{cmpopts.EquateApprox(0, floatMargin), cmpopts.EquateEmpty()}

// normalize maps v onto the JSON data model: nil, bool, float64, string,
// []any and map[string]any.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// compare reports whether got matches want, and a diff when it does not.
// With unordered set, both sides must be lists holding the same elements
// with the same multiplicities, in any order; nested applies the same rule to
// every list found inside them.
func compare(got, want any, unordered, nested bool) (bool, string, error) {
	g, err := normalize(got)
	if err != nil {
		return false, "", fmt.Errorf("encoding answer: %w", err)
	}
	w, err := normalize(want)
	if err != nil {
		return false, "", fmt.Errorf("encoding expected answer: %w", err)
	}

	if unordered {
		gl, gok := g.([]any)
		wl, wok := w.([]any)
		if gok && wok {
			if sameMultiset(gl, wl, nested) {
				return true, "", nil
			}
			return false, "unordered (-want +got):\n" + cmp.Diff(w, g, cmpOpts...), nil
		}
	}
	if cmp.Equal(w, g, cmpOpts...) {
		return true, "", nil
	}

	return false, "(-want +got):\n" + cmp.Diff(w, g, cmpOpts...), nil
}

// sameMultiset matches every element of a to a distinct equal element of b.
// With nested set, list elements are themselves matched as multisets.
func sameMultiset(a, b []any, nested bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
next:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && sameElem(x, y, nested) {
				used[j] = true
				continue next
			}
		}
		return false
	}

	return true
}

func sameElem(x, y any, nested bool) bool {
	if nested {
		xl, xok := x.([]any)
		yl, yok := y.([]any)
		if xok && yok {
			return sameMultiset(xl, yl, true)
		}
	}

	return cmp.Equal(x, y, cmpOpts...)
}
