package seq

import "github.com/charmingruby/lazyiter/option"

// MapIter applies a function to every item of its inner sequence.
type MapIter[A any, B any] struct {
	inner Iterator[A]
	fn    func(A) B
}

// Map lazily transforms each item with fn. fn runs once per produced item, in
// order.
func Map[A any, B any](it Iterator[A], fn func(A) B) *MapIter[A, B] {
	return &MapIter[A, B]{inner: it, fn: fn}
}

func (m *MapIter[A, B]) Next() option.Option[B] {
	return option.Map(m.inner.Next(), m.fn)
}

func (m *MapIter[A, B]) SizeHint() (int, option.Option[int]) {
	return SizeHint(m.inner)
}

func (m *MapIter[A, B]) Clone() (Iterator[B], bool) {
	return cloneWith(m.inner, func(c Iterator[A]) Iterator[B] {
		return &MapIter[A, B]{inner: c, fn: m.fn}
	})
}

// FilterMapIter maps items through an Option-returning function and drops the
// None results.
type FilterMapIter[A any, B any] struct {
	inner Iterator[A]
	fn    func(A) option.Option[B]
}

// FilterMap filters and maps in one step: items for which fn returns None are
// skipped.
func FilterMap[A any, B any](it Iterator[A], fn func(A) option.Option[B]) *FilterMapIter[A, B] {
	return &FilterMapIter[A, B]{inner: it, fn: fn}
}

func (f *FilterMapIter[A, B]) Next() option.Option[B] {
	for {
		v, ok := f.inner.Next().Get()
		if !ok {
			return none[B]()
		}
		if out := f.fn(v); out.IsSome() {
			return out
		}
	}
}

func (f *FilterMapIter[A, B]) SizeHint() (int, option.Option[int]) {
	_, upper := SizeHint(f.inner)
	return 0, upper
}

func (f *FilterMapIter[A, B]) Clone() (Iterator[B], bool) {
	return cloneWith(f.inner, func(c Iterator[A]) Iterator[B] {
		return &FilterMapIter[A, B]{inner: c, fn: f.fn}
	})
}

// MapWhileIter maps items until the function first returns None.
type MapWhileIter[A any, B any] struct {
	inner Iterator[A]
	fn    func(A) option.Option[B]
	done  bool
}

// MapWhile maps items through fn and stops for good at the first None, even
// if later items would map to Some.
func MapWhile[A any, B any](it Iterator[A], fn func(A) option.Option[B]) *MapWhileIter[A, B] {
	return &MapWhileIter[A, B]{inner: it, fn: fn}
}

func (m *MapWhileIter[A, B]) Next() option.Option[B] {
	if m.done {
		return none[B]()
	}
	v, ok := m.inner.Next().Get()
	if !ok {
		m.done = true
		return none[B]()
	}
	out := m.fn(v)
	if out.IsNone() {
		m.done = true
	}
	return out
}

func (m *MapWhileIter[A, B]) SizeHint() (int, option.Option[int]) {
	if m.done {
		return exact(0)
	}
	_, upper := SizeHint(m.inner)
	return 0, upper
}

func (m *MapWhileIter[A, B]) Clone() (Iterator[B], bool) {
	return cloneWith(m.inner, func(c Iterator[A]) Iterator[B] {
		return &MapWhileIter[A, B]{inner: c, fn: m.fn, done: m.done}
	})
}

// InspectIter passes items through unchanged after showing each to a
// side-effect function.
type InspectIter[T any] struct {
	inner Iterator[T]
	fn    func(T)
}

// Inspect calls fn with every produced item before passing it on.
func Inspect[T any](it Iterator[T], fn func(T)) *InspectIter[T] {
	return &InspectIter[T]{inner: it, fn: fn}
}

func (in *InspectIter[T]) Next() option.Option[T] {
	return option.Tap(in.inner.Next(), in.fn)
}

func (in *InspectIter[T]) SizeHint() (int, option.Option[int]) {
	return SizeHint(in.inner)
}

func (in *InspectIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(in.inner, func(c Iterator[T]) Iterator[T] {
		return &InspectIter[T]{inner: c, fn: in.fn}
	})
}
