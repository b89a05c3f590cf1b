package concurrency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrBadOrder indicates a start order that is not a permutation of 1, 2, 3.
var ErrBadOrder = errors.New("concurrency: order must be a permutation of 1, 2, 3")

// ErrNegativeRounds indicates a negative round count.
var ErrNegativeRounds = errors.New("concurrency: rounds must be non-negative")

// transcript collects output written from several goroutines.
type transcript struct {
	mu sync.Mutex
	sb strings.Builder
}

func (t *transcript) write(s string) {
	t.mu.Lock()
	t.sb.WriteString(s)
	t.mu.Unlock()
}

func (t *transcript) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sb.String()
}

// PrintInOrder starts First, Second and Third on their own goroutines in the
// given start order (1 = First) and returns the combined output, which is
// always "firstsecondthird".
func PrintInOrder(order []int) (string, error) {
	if len(order) != 3 {
		return "", fmt.Errorf("%w: got %v", ErrBadOrder, order)
	}
	var seen [4]bool
	for _, v := range order {
		if v < 1 || v > 3 || seen[v] {
			return "", fmt.Errorf("%w: got %v", ErrBadOrder, order)
		}
		seen[v] = true
	}

	var out transcript
	foo := NewFoo()
	calls := [4]func(){
		1: func() { foo.First(func() { out.write("first") }) },
		2: func() { foo.Second(func() { out.write("second") }) },
		3: func() { foo.Third(func() { out.write("third") }) },
	}

	var g errgroup.Group
	for _, v := range order {
		call := calls[v]
		g.Go(func() error {
			call()
			return nil
		})
	}
	_ = g.Wait()

	return out.String(), nil
}

// PrintFooBar runs n rounds of FooBar and returns the output, "foobar" n times.
func PrintFooBar(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeRounds, n)
	}

	var out transcript
	fb := NewFooBar(n)
	var g errgroup.Group
	g.Go(func() error {
		fb.Bar(func() { out.write("bar") })
		return nil
	})
	g.Go(func() error {
		fb.Foo(func() { out.write("foo") })
		return nil
	})
	_ = g.Wait()

	return out.String(), nil
}

// PrintZeroEvenOdd counts to n with ZeroEvenOdd and returns the output,
// e.g. "0102" for n = 2.
func PrintZeroEvenOdd(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeRounds, n)
	}

	var out transcript
	printNumber := func(x int) { out.write(strconv.Itoa(x)) }
	z := NewZeroEvenOdd(n)
	var g errgroup.Group
	g.Go(func() error { z.Odd(printNumber); return nil })
	g.Go(func() error { z.Even(printNumber); return nil })
	g.Go(func() error { z.Zero(printNumber); return nil })
	_ = g.Wait()

	return out.String(), nil
}
