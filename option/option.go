// Package option implements the Option type every sequence step is reported
// with: Some(item) for a produced element, None for absence or exhaustion.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/lazyiter/fp"
	"github.com/charmingruby/lazyiter/result"
)

// Option holds either one value of type T (Some) or nothing (None). The zero
// value is None. The value is stored inline, so Some(nil) is a valid present
// value for nil-capable types; use IsSome rather than comparing against nil.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value in a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's comma-ok convention.
//
// Example:
//
//	v, ok := cache[key]
//	opt := option.FromOk(v, ok)
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// IsSomeAnd reports whether a value is present and satisfies predicate. The
// predicate is not called for None.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.ok && predicate(o.value)
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnsafeGet returns the value or panics on None. Use it only where presence
// has already been established.
func (o Option[T]) UnsafeGet() T {
	if !o.ok {
		panic("option: UnsafeGet on None")
	}
	return o.value
}

// GetOrElse returns the value, or fallback when None.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// GetOrElseFunc is GetOrElse with a lazily computed fallback.
func (o Option[T]) GetOrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns o when it is Some, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElseFunc is OrElse with a lazily computed replacement.
func (o Option[T]) OrElseFunc(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	value := o.value
	return &value
}

// Filter keeps the value when predicate holds, otherwise returns None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Fold selects onNone for an empty Option or applies onSome to the value.
func Fold[T any, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// Map applies fn to a present value.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap applies an Option-returning fn to a present value.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Tap calls fn with a present value and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// Zip pairs two present values. It is None when either side is None.
func Zip[A any, B any](a Option[A], b Option[B]) Option[fp.Pair[A, B]] {
	if !a.ok || !b.ok {
		return None[fp.Pair[A, B]]()
	}
	return Some(fp.Pair[A, B]{First: a.value, Second: b.value})
}

// Sequence turns a slice of Options into an Option of a slice, failing on the
// first None.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.ok {
			return None[[]T]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}

// Traverse maps each item through fn and collects the values, failing on the
// first None. Items after the failing one are not visited.
func Traverse[A any, B any](items []A, fn func(A) Option[B]) Option[[]B] {
	out := make([]B, 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.ok {
			return None[[]B]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}

// Equal reports whether two Options are both None or both Some with equal
// values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}

// ToResult converts the Option into a Result, using errFactory for None. A nil
// factory or a nil error falls back to a generic "missing value" error.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.ok {
		return result.Ok(o.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("option: missing value")
	}
	return result.Err[T](err)
}

// String implements fmt.Stringer for debugging output.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
