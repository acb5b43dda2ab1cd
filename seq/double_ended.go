package seq

import "github.com/charmingruby/lazyiter/option"

// RFold is Fold driven from the tail with NextBack.
func RFold[T any, B any](it DoubleEndedIterator[T], init B, fn func(B, T) B) B {
	acc := init
	for {
		v, ok := it.NextBack().Get()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// TryRFold is TryFold driven from the tail.
func TryRFold[T any, B any](it DoubleEndedIterator[T], init B, fn func(B, T) option.Option[B]) option.Option[B] {
	return TryFold[T](Rev(it), init, fn)
}

// RFind returns the last item satisfying predicate, searching from the tail.
func RFind[T any](it DoubleEndedIterator[T], predicate func(T) bool) option.Option[T] {
	return Find[T](Rev(it), predicate)
}

// AdvanceBackBy discards up to n items from the tail.
func AdvanceBackBy[T any](it DoubleEndedIterator[T], n int) error {
	for i := 0; i < n; i++ {
		if it.NextBack().IsNone() {
			return &AdvanceError{Requested: n, Remaining: n - i}
		}
	}
	return nil
}

// NthBack returns the n-th item counted from the tail, zero-based.
func NthBack[T any](it DoubleEndedIterator[T], n int) option.Option[T] {
	if n < 0 || AdvanceBackBy(it, n) != nil {
		return option.None[T]()
	}
	return it.NextBack()
}

// RPosition searches from the tail and returns the front-based index of the
// last item satisfying predicate. The index is derived from Len, so it is
// only meaningful for sequences with an exact size hint.
func RPosition[T any](it DoubleEndedIterator[T], predicate func(T) bool) option.Option[int] {
	found := option.None[int]()
	TryRFold(it, Len[T](it)-1, func(i int, v T) option.Option[int] {
		if predicate(v) {
			found = option.Some(i)
			return option.None[int]()
		}
		return option.Some(i - 1)
	})
	return found
}

// RevIter swaps the ends of a double-ended sequence.
type RevIter[T any] struct {
	inner DoubleEndedIterator[T]
}

// Rev produces the items of it from the tail to the head.
func Rev[T any](it DoubleEndedIterator[T]) *RevIter[T] {
	return &RevIter[T]{inner: it}
}

func (r *RevIter[T]) Next() option.Option[T]     { return r.inner.NextBack() }
func (r *RevIter[T]) NextBack() option.Option[T] { return r.inner.Next() }

func (r *RevIter[T]) Nth(n int) option.Option[T] {
	return NthBack(r.inner, n)
}

func (r *RevIter[T]) SizeHint() (int, option.Option[int]) {
	return SizeHint[T](r.inner)
}

func (r *RevIter[T]) Clone() (Iterator[T], bool) {
	c, ok := Clone[T](r.inner).Get()
	if !ok {
		return nil, false
	}
	inner, ok := c.(DoubleEndedIterator[T])
	if !ok {
		return nil, false
	}
	return &RevIter[T]{inner: inner}, true
}
