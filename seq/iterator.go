// Package seq is a lazy, pull-based sequence library.
//
// A sequence is anything implementing Iterator: a single Next method that
// returns option.Some(item) or option.None once the sequence is exhausted.
// Adapters (Map, Filter, Chain, Zip, Take, ...) wrap one or two sequences and
// transform their output on demand; constructing an adapter never pulls an
// item. Terminal operations (Fold, Collect, Find, ...) drive the pipeline.
//
// Example:
//
//	evens := seq.From(seq.Range(1, 11)).Filter(func(n int) bool { return n%2 == 0 })
//	squares := seq.Map(evens, func(n int) int { return n * n })
//	fmt.Println(seq.Collect(squares)) // [4 16 36 64 100]
//
// Sequences are single-owner values: they carry private cursor state and are
// not safe for concurrent use.
package seq

import (
	"github.com/charmingruby/lazyiter/fp"
	"github.com/charmingruby/lazyiter/option"
)

// Iterator is the pull-based sequence contract. Next produces the next item,
// or None when the sequence is exhausted.
type Iterator[T any] interface {
	Next() option.Option[T]
}

// DoubleEndedIterator is a sequence that can also produce items from its tail.
// Only sequences over materialized backing stores (slices, ranges) and
// adapters preserving that property implement it.
type DoubleEndedIterator[T any] interface {
	Iterator[T]
	NextBack() option.Option[T]
}

// SizeHinter reports bounds on the remaining length without consuming
// anything: a lower bound and an optional upper bound. Sequences that do not
// implement it are treated as (0, None).
type SizeHinter interface {
	SizeHint() (int, option.Option[int])
}

// Cloner is implemented by sequences that can produce an independent copy of
// their remaining state. The copy resumes from the current position. Clone
// reports false when something the sequence wraps cannot be copied.
type Cloner[T any] interface {
	Clone() (Iterator[T], bool)
}

// Pair is the item type of Zip, Enumerate and Unzip.
type Pair[A any, B any] = fp.Pair[A, B]

// nther and counter are fast paths Nth and Count look for. Implementations
// must be observably identical to the Next-driven defaults.
type nther[T any] interface {
	Nth(n int) option.Option[T]
}

type counter interface {
	Count() int
}

// Clone returns an independent copy of it positioned where it currently is,
// or None when it cannot be cloned.
//
// Example:
//
//	it := seq.FromSlice([]int{1, 2, 3})
//	it.Next()
//	cp := seq.Clone[int](it).UnsafeGet()
//	fmt.Println(seq.Collect(cp)) // [2 3]
func Clone[T any](it Iterator[T]) option.Option[Iterator[T]] {
	c, ok := it.(Cloner[T])
	if !ok {
		return option.None[Iterator[T]]()
	}
	cp, ok := c.Clone()
	return option.FromOk(cp, ok)
}

func cloneWith[T any, U any](inner Iterator[T], wrap func(Iterator[T]) Iterator[U]) (Iterator[U], bool) {
	c, ok := Clone(inner).Get()
	if !ok {
		return nil, false
	}
	return wrap(c), true
}

func none[T any]() option.Option[T] {
	return option.None[T]()
}
