package seq

import "github.com/charmingruby/lazyiter/option"

// ChainIter drains one sequence and then another.
type ChainIter[T any] struct {
	// a is dropped once it reports exhaustion and never consulted again.
	a Iterator[T]
	b Iterator[T]
}

// Chain produces every item of a followed by every item of b.
func Chain[T any](a, b Iterator[T]) *ChainIter[T] {
	return &ChainIter[T]{a: a, b: b}
}

func (c *ChainIter[T]) Next() option.Option[T] {
	if c.a != nil {
		if v := c.a.Next(); v.IsSome() {
			return v
		}
		c.a = nil
	}
	if c.b == nil {
		return none[T]()
	}
	return c.b.Next()
}

// Count delegates to both halves so their own fast paths apply.
func (c *ChainIter[T]) Count() int {
	n := 0
	if c.a != nil {
		n = Count(c.a)
		c.a = nil
	}
	if c.b != nil {
		n += Count(c.b)
	}
	return n
}

func (c *ChainIter[T]) SizeHint() (int, option.Option[int]) {
	switch {
	case c.a == nil && c.b == nil:
		return exact(0)
	case c.a == nil:
		return SizeHint(c.b)
	case c.b == nil:
		return SizeHint(c.a)
	}
	alo, ahi := SizeHint(c.a)
	blo, bhi := SizeHint(c.b)
	return saturatingAdd(alo, blo), checkedAdd(ahi, bhi)
}

func (c *ChainIter[T]) Clone() (Iterator[T], bool) {
	a, ok := cloneHalf(c.a)
	if !ok {
		return nil, false
	}
	b, ok := cloneHalf(c.b)
	if !ok {
		return nil, false
	}
	return &ChainIter[T]{a: a, b: b}, true
}

// cloneHalf clones a possibly dropped half; a nil half stays nil.
func cloneHalf[T any](it Iterator[T]) (Iterator[T], bool) {
	if it == nil {
		return nil, true
	}
	return Clone(it).Get()
}

// ZipIter pairs up the items of two sequences.
type ZipIter[A any, B any] struct {
	a Iterator[A]
	b Iterator[B]
}

// Zip produces pairs of items pulled from a and b in lockstep, stopping at
// the shorter side. a is pulled first; when a is exhausted b is not pulled,
// and when b is exhausted the item already pulled from a is dropped.
func Zip[A any, B any](a Iterator[A], b Iterator[B]) *ZipIter[A, B] {
	return &ZipIter[A, B]{a: a, b: b}
}

func (z *ZipIter[A, B]) Next() option.Option[Pair[A, B]] {
	x := z.a.Next()
	if x.IsNone() {
		return none[Pair[A, B]]()
	}
	return option.Zip(x, z.b.Next())
}

func (z *ZipIter[A, B]) SizeHint() (int, option.Option[int]) {
	alo, ahi := SizeHint(z.a)
	blo, bhi := SizeHint(z.b)
	return min(alo, blo), minUpper(ahi, bhi)
}

func (z *ZipIter[A, B]) Clone() (Iterator[Pair[A, B]], bool) {
	a, ok := Clone(z.a).Get()
	if !ok {
		return nil, false
	}
	b, ok := Clone(z.b).Get()
	if !ok {
		return nil, false
	}
	return &ZipIter[A, B]{a: a, b: b}, true
}

// EnumerateIter numbers the items of its inner sequence.
type EnumerateIter[T any] struct {
	inner Iterator[T]
	count int
}

// Enumerate pairs every item with its zero-based position.
//
// Example:
//
//	for p := range seq.Values(seq.Enumerate(seq.FromSlice(names))) {
//		fmt.Println(p.First, p.Second)
//	}
func Enumerate[T any](it Iterator[T]) *EnumerateIter[T] {
	return &EnumerateIter[T]{inner: it}
}

func (e *EnumerateIter[T]) Next() option.Option[Pair[int, T]] {
	v, ok := e.inner.Next().Get()
	if !ok {
		return none[Pair[int, T]]()
	}
	i := e.count
	e.count++
	return option.Some(Pair[int, T]{First: i, Second: v})
}

// Nth advances the position by n+1, accounting for the skipped items.
func (e *EnumerateIter[T]) Nth(n int) option.Option[Pair[int, T]] {
	if n < 0 {
		return none[Pair[int, T]]()
	}
	v, ok := Nth(e.inner, n).Get()
	if !ok {
		return none[Pair[int, T]]()
	}
	i := e.count + n
	e.count = i + 1
	return option.Some(Pair[int, T]{First: i, Second: v})
}

func (e *EnumerateIter[T]) Count() int {
	return Count(e.inner)
}

func (e *EnumerateIter[T]) SizeHint() (int, option.Option[int]) {
	return SizeHint(e.inner)
}

func (e *EnumerateIter[T]) Clone() (Iterator[Pair[int, T]], bool) {
	return cloneWith(e.inner, func(c Iterator[T]) Iterator[Pair[int, T]] {
		return &EnumerateIter[T]{inner: c, count: e.count}
	})
}
