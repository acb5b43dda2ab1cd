package seq

import "github.com/charmingruby/lazyiter/option"

// FuseIter guarantees that exhaustion is permanent.
type FuseIter[T any] struct {
	inner Iterator[T]
}

// Fuse wraps it so that after the first None every later call also yields
// None, even if it would resume on its own.
func Fuse[T any](it Iterator[T]) *FuseIter[T] {
	return &FuseIter[T]{inner: it}
}

func (f *FuseIter[T]) Next() option.Option[T] {
	return f.clearOnNone(func(it Iterator[T]) option.Option[T] { return it.Next() })
}

func (f *FuseIter[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return none[T]()
	}
	return f.clearOnNone(func(it Iterator[T]) option.Option[T] { return Nth(it, n) })
}

func (f *FuseIter[T]) clearOnNone(pull func(Iterator[T]) option.Option[T]) option.Option[T] {
	if f.inner == nil {
		return none[T]()
	}
	v := pull(f.inner)
	if v.IsNone() {
		f.inner = nil
	}
	return v
}

func (f *FuseIter[T]) Count() int {
	if f.inner == nil {
		return 0
	}
	n := Count(f.inner)
	f.inner = nil
	return n
}

// IntoInner returns the wrapped sequence, or None once it has been exhausted.
func (f *FuseIter[T]) IntoInner() option.Option[Iterator[T]] {
	if f.inner == nil {
		return option.None[Iterator[T]]()
	}
	return option.Some(f.inner)
}

func (f *FuseIter[T]) SizeHint() (int, option.Option[int]) {
	if f.inner == nil {
		return exact(0)
	}
	return SizeHint(f.inner)
}

func (f *FuseIter[T]) Clone() (Iterator[T], bool) {
	inner, ok := cloneHalf(f.inner)
	if !ok {
		return nil, false
	}
	return &FuseIter[T]{inner: inner}, true
}
