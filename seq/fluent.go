package seq

import "github.com/charmingruby/lazyiter/option"

// Iter is a chainable view over any sequence. Its methods cover the adapters
// and terminals that keep the item type; type-changing adapters such as Map,
// Zip and Enumerate are package functions because Go methods cannot declare
// type parameters. Iter is itself an Iterator, so the two styles mix freely:
//
//	words := seq.From(seq.FromSlice(lines)).Filter(nonEmpty).Take(10)
//	lengths := seq.Map(words, func(s string) int { return len(s) })
type Iter[T any] struct {
	it Iterator[T]
}

// From wraps it for method chaining. Wrapping an Iter returns it unchanged.
func From[T any](it Iterator[T]) Iter[T] {
	if w, ok := it.(Iter[T]); ok {
		return w
	}
	return Iter[T]{it: it}
}

// Of returns a chainable sequence over the given values.
func Of[T any](values ...T) Iter[T] {
	return From[T](FromSlice(values))
}

// Unwrap returns the underlying sequence.
func (i Iter[T]) Unwrap() Iterator[T] { return i.it }

// Next pulls the next item from the underlying sequence.
func (i Iter[T]) Next() option.Option[T] { return i.it.Next() }

// SizeHint forwards to the underlying sequence.
func (i Iter[T]) SizeHint() (int, option.Option[int]) { return SizeHint(i.it) }

// Clone copies the underlying sequence at its cursor and rewraps it.
func (i Iter[T]) Clone() (Iterator[T], bool) {
	c, ok := Clone(i.it).Get()
	if !ok {
		return nil, false
	}
	return Iter[T]{it: c}, true
}

// Nth is the chained form of Nth.
func (i Iter[T]) Nth(n int) option.Option[T] { return Nth(i.it, n) }

// Count drains the sequence and returns how many items it produced.
func (i Iter[T]) Count() int { return Count(i.it) }

// Filter keeps the items satisfying predicate.
func (i Iter[T]) Filter(predicate func(T) bool) Iter[T] {
	return From[T](Filter(i.it, predicate))
}

// Chain continues with other once this sequence ends.
func (i Iter[T]) Chain(other Iterator[T]) Iter[T] {
	return From[T](Chain(i.it, other))
}

// Take stops after n items.
func (i Iter[T]) Take(n int) Iter[T] { return From[T](Take(i.it, n)) }

// Skip drops the first n items.
func (i Iter[T]) Skip(n int) Iter[T] { return From[T](Skip(i.it, n)) }

// TakeWhile yields items until predicate first fails.
func (i Iter[T]) TakeWhile(predicate func(T) bool) Iter[T] {
	return From[T](TakeWhile(i.it, predicate))
}

// SkipWhile drops items until predicate first fails.
func (i Iter[T]) SkipWhile(predicate func(T) bool) Iter[T] {
	return From[T](SkipWhile(i.it, predicate))
}

// StepBy panics with ErrZeroStep when step is not positive.
func (i Iter[T]) StepBy(step int) Iter[T] { return From[T](StepBy(i.it, step)) }

// Cycle repeats the sequence endlessly.
func (i Iter[T]) Cycle() Iter[T] { return From[T](Cycle(i.it)) }

// Fuse ends for good after the first None.
func (i Iter[T]) Fuse() Iter[T] { return From[T](Fuse(i.it)) }

// Inspect calls fn on each item as it passes through.
func (i Iter[T]) Inspect(fn func(T)) Iter[T] { return From[T](Inspect(i.it, fn)) }

// Intersperse places separator between adjacent items.
func (i Iter[T]) Intersperse(separator T) Iter[T] {
	return From[T](Intersperse(i.it, separator))
}

// IntersperseWith places the result of fn between adjacent items.
func (i Iter[T]) IntersperseWith(fn func() T) Iter[T] {
	return From[T](IntersperseWith(i.it, fn))
}

// Peekable returns the concrete adapter so Peek and NextIf are reachable.
func (i Iter[T]) Peekable() *PeekableIter[T] { return Peekable(i.it) }

// Collect drains the sequence into a slice.
func (i Iter[T]) Collect() []T { return Collect(i.it) }

// Last drains the sequence and returns its final item.
func (i Iter[T]) Last() option.Option[T] { return Last(i.it) }

// Find returns the first item satisfying predicate.
func (i Iter[T]) Find(predicate func(T) bool) option.Option[T] {
	return Find(i.it, predicate)
}

// ForEach calls fn on every item.
func (i Iter[T]) ForEach(fn func(T)) { ForEach(i.it, fn) }

// Reduce folds the items using the first one as the seed.
func (i Iter[T]) Reduce(fn func(T, T) T) option.Option[T] { return Reduce(i.it, fn) }

// All reports whether every item satisfies predicate.
func (i Iter[T]) All(predicate func(T) bool) bool { return All(i.it, predicate) }

// Any reports whether some item satisfies predicate.
func (i Iter[T]) Any(predicate func(T) bool) bool { return Any(i.it, predicate) }

// Position returns the index of the first item satisfying predicate.
func (i Iter[T]) Position(predicate func(T) bool) option.Option[int] {
	return Position(i.it, predicate)
}

// Partition splits the items by predicate.
func (i Iter[T]) Partition(predicate func(T) bool) ([]T, []T) {
	return Partition(i.it, predicate)
}
