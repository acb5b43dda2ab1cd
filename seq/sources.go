package seq

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/lazyiter/option"
)

// EmptyIter produces nothing.
type EmptyIter[T any] struct{}

// Empty returns a sequence that is exhausted from the start.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

func (*EmptyIter[T]) Next() option.Option[T]     { return none[T]() }
func (*EmptyIter[T]) NextBack() option.Option[T] { return none[T]() }

func (*EmptyIter[T]) SizeHint() (int, option.Option[int]) { return exact(0) }

func (*EmptyIter[T]) Clone() (Iterator[T], bool) { return &EmptyIter[T]{}, true }

// OnceIter produces a single item.
type OnceIter[T any] struct {
	value option.Option[T]
}

// Once returns a sequence producing value exactly once.
func Once[T any](value T) *OnceIter[T] {
	return &OnceIter[T]{value: option.Some(value)}
}

func (o *OnceIter[T]) Next() option.Option[T] {
	v := o.value
	o.value = none[T]()
	return v
}

func (o *OnceIter[T]) NextBack() option.Option[T] { return o.Next() }

func (o *OnceIter[T]) SizeHint() (int, option.Option[int]) {
	if o.value.IsSome() {
		return exact(1)
	}
	return exact(0)
}

func (o *OnceIter[T]) Clone() (Iterator[T], bool) {
	return &OnceIter[T]{value: o.value}, true
}

// OnceWithIter produces a single item computed on first demand.
type OnceWithIter[T any] struct {
	fn func() T
}

// OnceWith returns a sequence producing fn() once. fn is not called until the
// item is pulled.
func OnceWith[T any](fn func() T) *OnceWithIter[T] {
	return &OnceWithIter[T]{fn: fn}
}

func (o *OnceWithIter[T]) Next() option.Option[T] {
	if o.fn == nil {
		return none[T]()
	}
	fn := o.fn
	o.fn = nil
	return option.Some(fn())
}

func (o *OnceWithIter[T]) SizeHint() (int, option.Option[int]) {
	if o.fn != nil {
		return exact(1)
	}
	return exact(0)
}

// RepeatIter produces the same value forever.
type RepeatIter[T any] struct {
	value T
}

// Repeat returns an infinite sequence of value. Bound it with Take or a
// short-circuiting terminal before collecting.
func Repeat[T any](value T) *RepeatIter[T] {
	return &RepeatIter[T]{value: value}
}

func (r *RepeatIter[T]) Next() option.Option[T]     { return option.Some(r.value) }
func (r *RepeatIter[T]) NextBack() option.Option[T] { return option.Some(r.value) }

// Nth skips nothing observable: every position holds the same value.
func (r *RepeatIter[T]) Nth(int) option.Option[T] { return option.Some(r.value) }

func (r *RepeatIter[T]) SizeHint() (int, option.Option[int]) { return unbounded() }

func (r *RepeatIter[T]) Clone() (Iterator[T], bool) {
	return &RepeatIter[T]{value: r.value}, true
}

// RepeatWithIter calls a generator for every item, forever.
type RepeatWithIter[T any] struct {
	fn func() T
}

// RepeatWith returns an infinite sequence of fn() results.
//
// Example:
//
//	zeros := seq.RepeatWith(fp.Constant(0))
func RepeatWith[T any](fn func() T) *RepeatWithIter[T] {
	return &RepeatWithIter[T]{fn: fn}
}

func (r *RepeatWithIter[T]) Next() option.Option[T] { return option.Some(r.fn()) }

func (r *RepeatWithIter[T]) SizeHint() (int, option.Option[int]) { return unbounded() }

// FnIter delegates every Next call to a function. It cannot be cloned since
// the function's captured state cannot be copied.
type FnIter[T any] struct {
	fn func() option.Option[T]
}

// FromFn returns a sequence whose items are produced by fn; fn returning None
// signals exhaustion.
//
// Example:
//
//	n := 0
//	counter := seq.FromFn(func() option.Option[int] {
//		if n == 3 {
//			return option.None[int]()
//		}
//		n++
//		return option.Some(n)
//	})
func FromFn[T any](fn func() option.Option[T]) *FnIter[T] {
	return &FnIter[T]{fn: fn}
}

func (f *FnIter[T]) Next() option.Option[T] {
	if f.fn == nil {
		return none[T]()
	}
	return f.fn()
}

// IterateIter produces seed, fn(seed), fn(fn(seed)), ...
type IterateIter[T any] struct {
	next T
	fn   func(T) T
}

// Iterate returns the infinite sequence of repeated applications of fn,
// starting with seed itself.
func Iterate[T any](seed T, fn func(T) T) *IterateIter[T] {
	return &IterateIter[T]{next: seed, fn: fn}
}

func (it *IterateIter[T]) Next() option.Option[T] {
	v := it.next
	it.next = it.fn(v)
	return option.Some(v)
}

func (it *IterateIter[T]) SizeHint() (int, option.Option[int]) { return unbounded() }

func (it *IterateIter[T]) Clone() (Iterator[T], bool) {
	return &IterateIter[T]{next: it.next, fn: it.fn}, true
}

// RangeIter produces the integers of the half-open interval [start, end).
type RangeIter[T constraints.Integer] struct {
	start, end T
}

// Range returns the ascending integers from start up to, but excluding, end.
// It is empty when end <= start.
func Range[T constraints.Integer](start, end T) *RangeIter[T] {
	return &RangeIter[T]{start: start, end: end}
}

func (r *RangeIter[T]) Next() option.Option[T] {
	if r.start >= r.end {
		return none[T]()
	}
	v := r.start
	r.start++
	return option.Some(v)
}

func (r *RangeIter[T]) NextBack() option.Option[T] {
	if r.start >= r.end {
		return none[T]()
	}
	r.end--
	return option.Some(r.end)
}

// Nth jumps directly to the n-th remaining integer.
func (r *RangeIter[T]) Nth(n int) option.Option[T] {
	if n < 0 {
		return none[T]()
	}
	if uint64(n) >= r.remaining() {
		r.start = r.end
		return none[T]()
	}
	r.start += T(n)
	return r.Next()
}

// remaining is the exact distance end - start. Unsigned modular arithmetic
// keeps it correct for signed types whose span exceeds their own range.
func (r *RangeIter[T]) remaining() uint64 {
	if r.start >= r.end {
		return 0
	}
	return uint64(r.end) - uint64(r.start)
}

func (r *RangeIter[T]) SizeHint() (int, option.Option[int]) {
	n := r.remaining()
	if n > math.MaxInt {
		return math.MaxInt, option.None[int]()
	}
	return exact(int(n))
}

func (r *RangeIter[T]) Clone() (Iterator[T], bool) {
	return &RangeIter[T]{start: r.start, end: r.end}, true
}
