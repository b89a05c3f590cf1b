package heaps

import "errors"

// ErrNoData indicates FindMedian was called before any number was added.
var ErrNoData = errors.New("heaps: no numbers added")

// MedianFinder keeps the running median of a stream.
//
// lo is a max-heap with the smaller half, hi a min-heap with the larger half;
// lo holds the extra element when the count is odd.
type MedianFinder struct {
	lo *Heap[int]
	hi *Heap[int]
}

// NewMedianFinder returns an empty MedianFinder.
func NewMedianFinder() *MedianFinder {
	return &MedianFinder{lo: New(greater), hi: New(less)}
}

// AddNum adds num to the stream in O(log n).
func (m *MedianFinder) AddNum(num int) {
	m.lo.Push(num)
	m.hi.Push(m.lo.Pop())
	if m.hi.Len() > m.lo.Len() {
		m.lo.Push(m.hi.Pop())
	}
}

// FindMedian returns the median of all numbers added so far.
func (m *MedianFinder) FindMedian() (float64, error) {
	switch {
	case m.lo.Len() == 0:
		return 0, ErrNoData
	case m.lo.Len() > m.hi.Len():
		return float64(m.lo.Peek()), nil
	default:
		return (float64(m.lo.Peek()) + float64(m.hi.Peek())) / 2, nil
	}
}
