package seq

import "github.com/charmingruby/lazyiter/option"

// PeekableIter holds at most one look-ahead item from its inner sequence.
type PeekableIter[T any] struct {
	inner Iterator[T]
	// peeked is None when nothing is buffered, and Some(None) when the inner
	// sequence has already reported exhaustion to Peek.
	peeked option.Option[option.Option[T]]
}

// Peekable wraps it so the next item can be inspected without consuming it.
func Peekable[T any](it Iterator[T]) *PeekableIter[T] {
	return &PeekableIter[T]{inner: it}
}

// Peek returns the next item without consuming it. Repeated calls pull from
// the inner sequence only once.
func (p *PeekableIter[T]) Peek() option.Option[T] {
	if p.peeked.IsNone() {
		p.peeked = option.Some(p.inner.Next())
	}
	return p.peeked.UnsafeGet()
}

func (p *PeekableIter[T]) Next() option.Option[T] {
	if v, ok := p.peeked.Get(); ok {
		p.peeked = option.None[option.Option[T]]()
		return v
	}
	return p.inner.Next()
}

// NextIf consumes and returns the next item only when predicate accepts it;
// otherwise the item stays buffered for the next call.
func (p *PeekableIter[T]) NextIf(predicate func(T) bool) option.Option[T] {
	if p.Peek().IsSomeAnd(predicate) {
		return p.Next()
	}
	return option.None[T]()
}

// NextIfEq consumes the next item of p only when it equals want.
func NextIfEq[T comparable](p *PeekableIter[T], want T) option.Option[T] {
	return p.NextIf(func(v T) bool { return v == want })
}

func (p *PeekableIter[T]) SizeHint() (int, option.Option[int]) {
	buffered, ok := p.peeked.Get()
	if !ok {
		return SizeHint(p.inner)
	}
	if buffered.IsNone() {
		return exact(0)
	}
	lower, upper := SizeHint(p.inner)
	return saturatingAdd(lower, 1), checkedAdd(upper, option.Some(1))
}

func (p *PeekableIter[T]) Clone() (Iterator[T], bool) {
	return cloneWith(p.inner, func(c Iterator[T]) Iterator[T] {
		return &PeekableIter[T]{inner: c, peeked: p.peeked}
	})
}
