package concurrency

// Foo sequences three calls that may arrive from different goroutines.
// Each of First, Second and Third must be called exactly once.
type Foo struct {
	firstDone  chan struct{}
	secondDone chan struct{}
}

// NewFoo returns a ready Foo.
func NewFoo() *Foo {
	return &Foo{
		firstDone:  make(chan struct{}),
		secondDone: make(chan struct{}),
	}
}

// First runs print immediately.
func (f *Foo) First(print func()) {
	print()
	close(f.firstDone)
}

// Second runs print after First has finished.
func (f *Foo) Second(print func()) {
	<-f.firstDone
	print()
	close(f.secondDone)
}

// Third runs print after Second has finished.
func (f *Foo) Third(print func()) {
	<-f.secondDone
	print()
}

// FooBar makes two goroutines take turns, foo first, n times each.
type FooBar struct {
	n       int
	fooTurn chan struct{}
	barTurn chan struct{}
}

// NewFooBar returns a FooBar for n rounds.
func NewFooBar(n int) *FooBar {
	fb := &FooBar{
		n:       n,
		fooTurn: make(chan struct{}, 1),
		barTurn: make(chan struct{}, 1),
	}
	fb.fooTurn <- struct{}{}

	return fb
}

// Foo calls printFoo n times, each after the previous Bar round.
func (fb *FooBar) Foo(printFoo func()) {
	for i := 0; i < fb.n; i++ {
		<-fb.fooTurn
		printFoo()
		fb.barTurn <- struct{}{}
	}
}

// Bar calls printBar n times, each after the matching Foo round.
func (fb *FooBar) Bar(printBar func()) {
	for i := 0; i < fb.n; i++ {
		<-fb.barTurn
		printBar()
		fb.fooTurn <- struct{}{}
	}
}

// ZeroEvenOdd prints 0 1 0 2 ... 0 n split over three goroutines: one prints
// the zeros, one the even numbers, one the odd numbers.
type ZeroEvenOdd struct {
	n    int
	zero chan struct{}
	even chan struct{}
	odd  chan struct{}
}

// NewZeroEvenOdd returns a ZeroEvenOdd counting to n.
func NewZeroEvenOdd(n int) *ZeroEvenOdd {
	z := &ZeroEvenOdd{
		n:    n,
		zero: make(chan struct{}, 1),
		even: make(chan struct{}, 1),
		odd:  make(chan struct{}, 1),
	}
	z.zero <- struct{}{}

	return z
}

// Zero prints the n zeros.
func (z *ZeroEvenOdd) Zero(printNumber func(int)) {
	for i := 1; i <= z.n; i++ {
		<-z.zero
		printNumber(0)
		if i%2 == 1 {
			z.odd <- struct{}{}
		} else {
			z.even <- struct{}{}
		}
	}
}

// Even prints 2, 4, ... up to n.
func (z *ZeroEvenOdd) Even(printNumber func(int)) {
	for i := 2; i <= z.n; i += 2 {
		<-z.even
		printNumber(i)
		z.zero <- struct{}{}
	}
}

// Odd prints 1, 3, ... up to n.
func (z *ZeroEvenOdd) Odd(printNumber func(int)) {
	for i := 1; i <= z.n; i += 2 {
		<-z.odd
		printNumber(i)
		z.zero <- struct{}{}
	}
}
