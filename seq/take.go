package seq

import "github.com/charmingruby/lazyiter/option"

// TakeIter produces at most a fixed number of items.
type TakeIter[T any] struct {
	inner     Iterator[T]
	remaining int
}

// Take produces at most n items. With n <= 0 the sequence is exhausted
// without ever touching it.
func Take[T any](it Iterator[T], n int) *TakeIter[T] {
	return &TakeIter[T]{inner: it, remaining: max(n, 0)}
}

func (t *TakeIter[T]) Next() option.Option[T] {
	if t.remaining == 0 {
		return none[T]()
	}
	t.remaining--
	return t.inner.Next()
}

// Nth never pulls past the remaining budget.
func (t *TakeIter[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return none[T]()
	}
	if t.remaining > n {
		t.remaining -= n + 1
		return Nth(t.inner, n)
	}
	if t.remaining > 0 {
		Nth(t.inner, t.remaining-1)
		t.remaining = 0
	}
	return none[T]()
}

func (t *TakeIter[T]) SizeHint() (int, option.Option[int]) {
	if t.remaining == 0 {
		return exact(0)
	}
	lower, upper := SizeHint(t.inner)
	return min(lower, t.remaining), minUpper(upper, option.Some(t.remaining))
}

func (t *TakeIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(t.inner, func(c Iterator[T]) Iterator[T] {
		return &TakeIter[T]{inner: c, remaining: t.remaining}
	})
}

// SkipIter drops a fixed number of leading items.
type SkipIter[T any] struct {
	inner Iterator[T]
	n     int
}

// Skip drops the first n items. The skipping happens on the first pull, in a
// single Nth call on the inner sequence.
func Skip[T any](it Iterator[T], n int) *SkipIter[T] {
	return &SkipIter[T]{inner: it, n: max(n, 0)}
}

func (s *SkipIter[T]) Next() option.Option[T] {
	if s.n > 0 {
		n := s.n
		s.n = 0
		return Nth(s.inner, n)
	}
	return s.inner.Next()
}

// Nth folds the pending skip into one inner Nth call.
func (s *SkipIter[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return none[T]()
	}
	if s.n == 0 {
		return Nth(s.inner, n)
	}
	skip := s.n
	s.n = 0
	if skip > maxInt-n {
		if Nth(s.inner, skip-1).IsNone() {
			return none[T]()
		}
		return Nth(s.inner, n)
	}
	return Nth(s.inner, skip+n)
}

func (s *SkipIter[T]) SizeHint() (int, option.Option[int]) {
	lower, upper := SizeHint(s.inner)
	return saturatingSub(lower, s.n), option.Map(upper, func(u int) int {
		return saturatingSub(u, s.n)
	})
}

func (s *SkipIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(s.inner, func(c Iterator[T]) Iterator[T] {
		return &SkipIter[T]{inner: c, n: s.n}
	})
}

// StepByIter produces the first item and then every step-th one after it.
type StepByIter[T any] struct {
	inner     Iterator[T]
	skip      int
	firstTake bool
}

// StepBy produces items at positions 0, step, 2*step, ... of it. It panics
// with ErrZeroStep when step is not positive, at construction rather than on
// first use.
func StepBy[T any](it Iterator[T], step int) *StepByIter[T] {
	if step <= 0 {
		panic(ErrZeroStep)
	}
	return &StepByIter[T]{inner: it, skip: step - 1, firstTake: true}
}

func (s *StepByIter[T]) Next() option.Option[T] {
	if s.firstTake {
		s.firstTake = false
		return s.inner.Next()
	}
	return Nth(s.inner, s.skip)
}

func (s *StepByIter[T]) SizeHint() (int, option.Option[int]) {
	step := s.skip + 1
	count := func(n int) int {
		if !s.firstTake {
			return n / step
		}
		if n == 0 {
			return 0
		}
		return 1 + (n-1)/step
	}
	lower, upper := SizeHint(s.inner)
	return count(lower), option.Map(upper, count)
}

func (s *StepByIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(s.inner, func(c Iterator[T]) Iterator[T] {
		return &StepByIter[T]{inner: c, skip: s.skip, firstTake: s.firstTake}
	})
}
