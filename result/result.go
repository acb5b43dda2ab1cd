// Package result provides a value-or-error type used by the fallible
// terminal operations of package seq.
//
// Example:
//
//	res := seq.TryFoldErr(lines, 0, func(total int, line string) (int, error) {
//		n, err := strconv.Atoi(line)
//		return total + n, err
//	})
//	total, err := res.Unwrap()
//
// Map and FlatMap uphold the functor and monad laws (see laws_result_test.go).
package result

import "errors"

// Result is either a value of type T or an error. It never panics except in
// UnsafeUnwrap.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result.
//
// Example:
//
//	res := result.Ok(3)
//	fmt.Println(res.IsOk()) // true
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. A nil err is replaced with a placeholder so
// that a failure can never be mistaken for success.
//
// Example:
//
//	res := result.Err[int](strconv.ErrSyntax)
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a (value, error) pair into a Result.
//
// Example:
//
//	res := result.FromTuple(strconv.Atoi(s))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// UnsafeUnwrap returns the value or panics with the stored error.
//
// Example:
//
//	total := seq.TryFoldErr(it, 0, add).UnsafeUnwrap()
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Unwrap returns the value and error, in Go's usual order.
//
// Example:
//
//	values, err := seq.CollectResults(parsed).Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value, or fallback on error.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnwrapOrElse computes a fallback from the error when the Result failed.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err == nil {
		return r.value
	}
	return fn(r.err)
}

// Map transforms the value on success.
//
// Example:
//
//	count := result.Map(res, func(vs []int) int { return len(vs) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// FlatMap chains a Result-returning fn, propagating the first error.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err == nil {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MapErr rewrites the stored error. A nil fn leaves r untouched.
//
// Example:
//
//	res = result.MapErr(res, func(err error) error {
//		return fmt.Errorf("parse line: %w", err)
//	})
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil || r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// Fold collapses the Result into a single value.
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Sequence turns a slice of Results into a Result of a slice, failing on the
// first error.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}
