package stacks_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/stacks"
)

func TestIsValid(t *testing.T) {
	for in, want := range map[string]bool{
		"()":     true,
		"()[]{}": true,
		"(]":     false,
		"([)]":   false,
		"{[]}":   true,
		"":       true,
		"((":     false,
		"]":      false,
	} {
		assert.Equal(t, want, stacks.IsValid(in), in)
	}
}

func TestEvalRPN(t *testing.T) {
	got, err := stacks.EvalRPN([]string{"2", "1", "+", "3", "*"})
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	got, err = stacks.EvalRPN([]string{"10", "6", "9", "3", "+", "-11", "*", "/", "*", "17", "+", "5", "+"})
	require.NoError(t, err)
	assert.Equal(t, 22, got)

	got, err = stacks.EvalRPN([]string{"-7", "2", "/"})
	require.NoError(t, err)
	assert.Equal(t, -3, got, "division truncates toward zero")

	for _, bad := range [][]string{{"+"}, {"1", "2"}, {"1", "x", "+"}, {"1", "0", "/"}, {}} {
		_, err := stacks.EvalRPN(bad)
		assert.ErrorIs(t, err, stacks.ErrMalformedExpression, "%v", bad)
	}
}

func TestDecodeString(t *testing.T) {
	assert.Equal(t, "aaabcbc", stacks.DecodeString("3[a]2[bc]"))
	assert.Equal(t, "accaccacc", stacks.DecodeString("3[a2[c]]"))
	assert.Equal(t, "abcabccdcdcdef", stacks.DecodeString("2[abc]3[cd]ef"))
	assert.Equal(t, "xxxxxxxxxx", stacks.DecodeString("10[x]"))
}

func TestAsteroidCollision(t *testing.T) {
	assert.Equal(t, []int{5, 10}, stacks.AsteroidCollision([]int{5, 10, -5}))
	assert.Equal(t, []int{}, stacks.AsteroidCollision([]int{8, -8}))
	assert.Equal(t, []int{10}, stacks.AsteroidCollision([]int{10, 2, -5}))
	assert.Equal(t, []int{-2, -1, 1, 2}, stacks.AsteroidCollision([]int{-2, -1, 1, 2}))
}

func TestMonotonic(t *testing.T) {
	assert.Equal(t, []int{1, 1, 4, 2, 1, 1, 0, 0}, stacks.DailyTemperatures([]int{73, 74, 75, 71, 69, 72, 76, 73}))
	assert.Equal(t, []int{-1, 3, -1}, stacks.NextGreaterElement([]int{4, 1, 2}, []int{1, 3, 4, 2}))
	assert.Equal(t, []int{3, -1}, stacks.NextGreaterElement([]int{2, 4}, []int{1, 2, 3, 4}))

	assert.Equal(t, 10, stacks.LargestRectangleArea([]int{2, 1, 5, 6, 2, 3}))
	assert.Equal(t, 4, stacks.LargestRectangleArea([]int{2, 4}))
	assert.Equal(t, 0, stacks.LargestRectangleArea(nil))
	assert.Equal(t, 9, stacks.LargestRectangleArea([]int{3, 3, 3}))
}

func TestMinStack(t *testing.T) {
	s := stacks.NewMinStack()
	_, err := s.GetMin()
	assert.ErrorIs(t, err, stacks.ErrEmptyStack)
	assert.ErrorIs(t, s.Pop(), stacks.ErrEmptyStack)

	s.Push(-2)
	s.Push(0)
	s.Push(-3)
	m, _ := s.GetMin()
	assert.Equal(t, -3, m)
	require.NoError(t, s.Pop())
	top, _ := s.Top()
	assert.Equal(t, 0, top)
	m, _ = s.GetMin()
	assert.Equal(t, -2, m)
	assert.Equal(t, 2, s.Len())
}

func TestMinStack_Design(t *testing.T) {
	var p = stacks.Problems()[3]
	require.Equal(t, "min-stack", p.Slug)

	got, err := p.Solve([]json.RawMessage{
		json.RawMessage(`["MinStack","push","push","push","getMin","pop","top","getMin"]`),
		json.RawMessage(`[[],[-2],[0],[-3],[],[],[],[]]`),
	})
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, nil, nil, -3, nil, 0, -2}, got)
}
