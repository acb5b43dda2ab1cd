package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lazyiter/option"
	"github.com/charmingruby/lazyiter/seq"
)

// spy counts how many times its inner sequence is pulled.
type spy[T any] struct {
	inner seq.Iterator[T]
	pulls int
}

func spyOn[T any](values ...T) *spy[T] {
	return &spy[T]{inner: seq.FromSlice(values)}
}

func (s *spy[T]) Next() option.Option[T] {
	s.pulls++
	return s.inner.Next()
}

// resuming yields 1 and 2, reports exhaustion once, then yields 3 and 4 before
// ending for good. It models a source without a fused guarantee.
func resuming() *seq.FnIter[int] {
	script := []option.Option[int]{
		option.Some(1), option.Some(2), option.None[int](), option.Some(3), option.Some(4),
	}
	calls := 0
	return seq.FromFn(func() option.Option[int] {
		if calls >= len(script) {
			return option.None[int]()
		}
		v := script[calls]
		calls++
		return v
	})
}

func isEven(n int) bool { return n%2 == 0 }

func assertHint(t *testing.T, h seq.SizeHinter, lower int, upper option.Option[int]) {
	t.Helper()
	gotLower, gotUpper := h.SizeHint()
	assert.Equal(t, lower, gotLower, "lower bound")
	assert.Equal(t, upper, gotUpper, "upper bound")
}

// misreported claims a fixed lower bound regardless of what it yields.
type misreported[T any] struct {
	inner seq.Iterator[T]
	lower int
}

func (m *misreported[T]) Next() option.Option[T] { return m.inner.Next() }

func (m *misreported[T]) SizeHint() (int, option.Option[int]) {
	return m.lower, option.None[int]()
}
