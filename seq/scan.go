package seq

import "github.com/charmingruby/lazyiter/option"

// ScanIter carries an accumulator across items and produces every
// intermediate value of it.
type ScanIter[T any, S any] struct {
	inner    Iterator[T]
	state    S
	fn       func(S, T) S
	finished bool
}

// Scan is a lazy fold: for every item it computes fn(state, item), stores the
// result as the new state and produces it. Once the inner sequence is
// exhausted the scan stays finished and never pulls again.
//
// Example:
//
//	sums := seq.Scan(seq.FromSlice([]int{1, 2, 3}), 0, func(acc, v int) int { return acc + v })
//	fmt.Println(seq.Collect(sums)) // [1 3 6]
func Scan[T any, S any](it Iterator[T], initial S, fn func(S, T) S) *ScanIter[T, S] {
	return &ScanIter[T, S]{inner: it, state: initial, fn: fn}
}

func (s *ScanIter[T, S]) Next() option.Option[S] {
	if s.finished {
		return none[S]()
	}
	v, ok := s.inner.Next().Get()
	if !ok {
		s.finished = true
		return none[S]()
	}
	s.state = s.fn(s.state, v)
	return option.Some(s.state)
}

// State returns the current accumulator.
func (s *ScanIter[T, S]) State() S {
	return s.state
}

func (s *ScanIter[T, S]) SizeHint() (int, option.Option[int]) {
	if s.finished {
		return exact(0)
	}
	return SizeHint(s.inner)
}

func (s *ScanIter[T, S]) Clone() (Iterator[S], bool) {
	return cloneWith(s.inner, func(c Iterator[T]) Iterator[S] {
		return &ScanIter[T, S]{inner: c, state: s.state, fn: s.fn, finished: s.finished}
	})
}
