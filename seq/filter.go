package seq

import "github.com/charmingruby/lazyiter/option"

// FilterIter produces the items of its inner sequence satisfying a predicate.
type FilterIter[T any] struct {
	inner     Iterator[T]
	predicate func(T) bool
}

// Filter keeps the items for which predicate returns true. Any number of
// rejected items may be pulled to find the next match.
func Filter[T any](it Iterator[T], predicate func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{inner: it, predicate: predicate}
}

func (f *FilterIter[T]) Next() option.Option[T] {
	return Find(f.inner, f.predicate)
}

func (f *FilterIter[T]) SizeHint() (int, option.Option[int]) {
	_, upper := SizeHint(f.inner)
	return 0, upper
}

func (f *FilterIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(f.inner, func(c Iterator[T]) Iterator[T] {
		return &FilterIter[T]{inner: c, predicate: f.predicate}
	})
}

// TakeWhileIter produces items until the predicate first fails.
type TakeWhileIter[T any] struct {
	inner     Iterator[T]
	predicate func(T) bool
	done      bool
}

// TakeWhile produces items while predicate holds. The first failing item is
// consumed and discarded, and the sequence stays exhausted afterwards.
func TakeWhile[T any](it Iterator[T], predicate func(T) bool) *TakeWhileIter[T] {
	return &TakeWhileIter[T]{inner: it, predicate: predicate}
}

func (t *TakeWhileIter[T]) Next() option.Option[T] {
	if t.done {
		return none[T]()
	}
	v := t.inner.Next()
	if !v.IsSomeAnd(t.predicate) {
		t.done = true
		return none[T]()
	}
	return v
}

func (t *TakeWhileIter[T]) SizeHint() (int, option.Option[int]) {
	if t.done {
		return exact(0)
	}
	_, upper := SizeHint(t.inner)
	return 0, upper
}

func (t *TakeWhileIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(t.inner, func(c Iterator[T]) Iterator[T] {
		return &TakeWhileIter[T]{inner: c, predicate: t.predicate, done: t.done}
	})
}

// SkipWhileIter drops leading items while a predicate holds.
type SkipWhileIter[T any] struct {
	inner     Iterator[T]
	predicate func(T) bool
	passing   bool
}

// SkipWhile drops items while predicate holds. The first failing item is
// produced, and from then on every item passes through unchecked.
func SkipWhile[T any](it Iterator[T], predicate func(T) bool) *SkipWhileIter[T] {
	return &SkipWhileIter[T]{inner: it, predicate: predicate}
}

func (s *SkipWhileIter[T]) Next() option.Option[T] {
	if s.passing {
		return s.inner.Next()
	}
	v := Find(s.inner, func(v T) bool { return !s.predicate(v) })
	if v.IsSome() {
		s.passing = true
	}
	return v
}

func (s *SkipWhileIter[T]) SizeHint() (int, option.Option[int]) {
	if s.passing {
		return SizeHint(s.inner)
	}
	_, upper := SizeHint(s.inner)
	return 0, upper
}

func (s *SkipWhileIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(s.inner, func(c Iterator[T]) Iterator[T] {
		return &SkipWhileIter[T]{inner: c, predicate: s.predicate, passing: s.passing}
	})
}
