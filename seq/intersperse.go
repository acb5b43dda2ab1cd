package seq

import (
	"github.com/charmingruby/lazyiter/fp"
	"github.com/charmingruby/lazyiter/option"
)

// IntersperseIter places a separator between consecutive items.
type IntersperseIter[T any] struct {
	inner     Iterator[T]
	separator func() T
	// peeked is the look-ahead item that decides whether a separator is due.
	peeked  option.Option[T]
	started bool
	needSep bool
}

// Intersperse places a copy of separator between every two adjacent items: n
// items become 2n-1, and an empty sequence stays empty.
func Intersperse[T any](it Iterator[T], separator T) *IntersperseIter[T] {
	return IntersperseWith(it, fp.Constant(separator))
}

// IntersperseWith is Intersperse with separators produced by fn, called once
// per separator and only when one is actually due.
func IntersperseWith[T any](it Iterator[T], fn func() T) *IntersperseIter[T] {
	return &IntersperseIter[T]{inner: it, separator: fn}
}

func (s *IntersperseIter[T]) Next() option.Option[T] {
	if s.needSep {
		s.needSep = false
		return option.Some(s.separator())
	}
	var item option.Option[T]
	if s.started {
		item = s.peeked
	} else {
		s.started = true
		item = s.inner.Next()
	}
	s.peeked = option.None[T]()
	if item.IsNone() {
		return item
	}
	s.peeked = s.inner.Next()
	s.needSep = s.peeked.IsSome()
	return item
}

func (s *IntersperseIter[T]) SizeHint() (int, option.Option[int]) {
	buffered := 0
	if s.peeked.IsSome() {
		buffered = 1
	}
	if s.started && buffered == 0 {
		return exact(0)
	}
	lower, upper := SizeHint(s.inner)
	extra := 0
	if s.needSep {
		extra = 1
	}
	// r remaining items become 2r-1 outputs, plus a separator already due.
	interleave := func(r int) int {
		r = saturatingAdd(r, buffered)
		if r == 0 {
			return 0
		}
		return saturatingAdd(saturatingAdd(r, r-1), extra)
	}
	return interleave(lower), option.FlatMap(upper, func(u int) option.Option[int] {
		if u > maxInt/2 {
			return option.None[int]()
		}
		return option.Some(interleave(u))
	})
}

func (s *IntersperseIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(s.inner, func(c Iterator[T]) Iterator[T] {
		cp := *s
		cp.inner = c
		return &cp
	})
}
