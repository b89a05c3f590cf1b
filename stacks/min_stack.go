package stacks

// MinStack is a stack that also reports its minimum in O(1).
// Each entry stores the value together with the minimum below and including it.
type MinStack struct {
	items []minItem
}

type minItem struct {
	val, min int
}

// NewMinStack returns an empty MinStack.
func NewMinStack() *MinStack {
	return &MinStack{}
}

// Push adds x on top.
func (s *MinStack) Push(x int) {
	m := x
	if n := len(s.items); n > 0 && s.items[n-1].min < m {
		m = s.items[n-1].min
	}
	s.items = append(s.items, minItem{val: x, min: m})
}

// Pop removes the top element.
func (s *MinStack) Pop() error {
	if len(s.items) == 0 {
		return ErrEmptyStack
	}
	s.items = s.items[:len(s.items)-1]

	return nil
}

// Top returns the top element.
func (s *MinStack) Top() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}

	return s.items[len(s.items)-1].val, nil
}

// GetMin returns the smallest element currently on the stack.
func (s *MinStack) GetMin() (int, error) {
	if len(s.items) == 0 {
		return 0, ErrEmptyStack
	}

	return s.items[len(s.items)-1].min, nil
}

// Len returns the number of elements.
func (s *MinStack) Len() int { return len(s.items) }
