package seq

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/charmingruby/lazyiter/option"
)

// SliceIter walks a slice from both ends without copying it.
type SliceIter[T any] struct {
	values      []T
	front, back int
}

// FromSlice returns a double-ended sequence over values. The bounds are fixed
// at construction; appending to the slice afterwards is not observed.
func FromSlice[T any](values []T) *SliceIter[T] {
	return &SliceIter[T]{values: values, back: len(values)}
}

func (s *SliceIter[T]) Next() option.Option[T] {
	if s.front >= s.back {
		return none[T]()
	}
	v := s.values[s.front]
	s.front++
	return option.Some(v)
}

func (s *SliceIter[T]) NextBack() option.Option[T] {
	if s.front >= s.back {
		return none[T]()
	}
	s.back--
	return option.Some(s.values[s.back])
}

func (s *SliceIter[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return none[T]()
	}
	if n >= s.back-s.front {
		s.front = s.back
		return none[T]()
	}
	s.front += n
	return s.Next()
}

func (s *SliceIter[T]) Count() int {
	n := s.back - s.front
	s.front = s.back
	return n
}

func (s *SliceIter[T]) SizeHint() (int, option.Option[int]) {
	return exact(s.back - s.front)
}

func (s *SliceIter[T]) Clone() (Iterator[T], bool) {
	cp := *s
	return &cp, true
}

// AsSlice returns the items not yet produced, sharing the backing array.
func (s *SliceIter[T]) AsSlice() []T {
	return s.values[s.front:s.back]
}

// FromSet returns a sequence over the members of a set represented the Go way,
// as a map to struct{}. Members are snapshotted at construction in Go's
// unspecified map order.
func FromSet[T comparable](set map[T]struct{}) *SliceIter[T] {
	return FromSlice(slices.Collect(maps.Keys(set)))
}

// MapValues returns a sequence over the values of m, snapshotted at
// construction in Go's unspecified map order.
func MapValues[K comparable, V any](m map[K]V) *SliceIter[V] {
	return FromSlice(slices.Collect(maps.Values(m)))
}

// SortedMapValues returns a sequence over the values of m ordered by key.
func SortedMapValues[K cmp.Ordered, V any](m map[K]V) *SliceIter[V] {
	keys := slices.Sorted(maps.Keys(m))
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return FromSlice(values)
}

// PullIter adapts a push-style iter.Seq into a pull sequence.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq converts an iter.Seq into a sequence. The conversion holds a
// coroutine until the sequence is exhausted; call Stop when abandoning it
// early.
func FromSeq[T any](s iter.Seq[T]) *PullIter[T] {
	next, stop := iter.Pull(s)
	return &PullIter[T]{next: next, stop: stop}
}

func (p *PullIter[T]) Next() option.Option[T] {
	if p.next == nil {
		return none[T]()
	}
	v, ok := p.next()
	if !ok {
		p.Stop()
		return none[T]()
	}
	return option.Some(v)
}

// Stop releases the underlying iter.Seq. Further calls to Next yield None.
func (p *PullIter[T]) Stop() {
	if p.stop != nil {
		p.stop()
	}
	p.next, p.stop = nil, nil
}

// Values exposes a sequence as an iter.Seq so it can be used with range.
// Breaking out of the loop leaves the remaining items in the sequence.
//
// Example:
//
//	for v := range seq.Values(seq.Range(0, 3)) {
//		fmt.Println(v)
//	}
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Enumerated exposes a sequence as an iter.Seq2 of position and item.
func Enumerated[T any](it Iterator[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; ; i++ {
			v, ok := it.Next().Get()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}
