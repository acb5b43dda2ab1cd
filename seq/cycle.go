package seq

import (
	"slices"

	"github.com/charmingruby/lazyiter/option"
)

// CycleIter repeats the items of its inner sequence endlessly.
type CycleIter[T any] struct {
	// inner is dropped after its first exhaustion; the replay comes from buf.
	inner Iterator[T]
	buf   []T
	pos   int
}

// Cycle produces the items of it, then replays them forever. The first pass
// is recorded as it is produced, so the inner sequence is traversed exactly
// once and need not be cloneable. An inner sequence that is empty from the
// start makes the cycle empty too.
func Cycle[T any](it Iterator[T]) *CycleIter[T] {
	return &CycleIter[T]{inner: it}
}

func (c *CycleIter[T]) Next() option.Option[T] {
	if c.inner != nil {
		if v, ok := c.inner.Next().Get(); ok {
			c.buf = append(c.buf, v)
			return option.Some(v)
		}
		c.inner = nil
	}
	if len(c.buf) == 0 {
		return none[T]()
	}
	v := c.buf[c.pos]
	c.pos = (c.pos + 1) % len(c.buf)
	return option.Some(v)
}

// Nth jumps within the replay buffer once the first pass is complete.
func (c *CycleIter[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return none[T]()
	}
	if c.inner != nil {
		if AdvanceBy(c, n) != nil {
			return none[T]()
		}
		return c.Next()
	}
	if len(c.buf) == 0 {
		return none[T]()
	}
	c.pos = (c.pos + n%len(c.buf)) % len(c.buf)
	return c.Next()
}

func (c *CycleIter[T]) SizeHint() (int, option.Option[int]) {
	if len(c.buf) > 0 {
		return unbounded()
	}
	if c.inner == nil {
		return exact(0)
	}
	lower, upper := SizeHint(c.inner)
	switch {
	case lower > 0:
		return unbounded()
	case option.Equal(upper, option.Some(0)):
		return exact(0)
	default:
		return 0, option.None[int]()
	}
}

func (c *CycleIter[T]) Clone() (Iterator[T], bool) {
	inner, ok := cloneHalf(c.inner)
	if !ok {
		return nil, false
	}
	return &CycleIter[T]{inner: inner, buf: slices.Clone(c.buf), pos: c.pos}, true
}
