// Package fp holds the small function helpers that sequence pipelines are
// assembled from.
//
// Example:
//
//	odd := fp.Not(func(n int) bool { return n%2 == 0 })
//	values := seq.From(seq.FromSlice(xs)).Filter(odd).Collect()
package fp

// Pair holds two related values, such as the items zipped from two sequences
// or an index and the element it numbers.
//
// Example:
//
//	p := fp.Pair[int, string]{First: 0, Second: "a"}
type Pair[A any, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its two halves.
func MakePair[A any, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Identity returns its argument unchanged. Flattening a sequence of sequences
// is a flat-map with Identity.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	zeros := seq.RepeatWith(fp.Constant(0))
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Not negates a predicate.
func Not[T any](predicate func(T) bool) func(T) bool {
	return func(v T) bool {
		return !predicate(v)
	}
}

// Pipe threads value through fns from left to right.
//
// Example:
//
//	it := fp.Pipe(seq.From(source),
//		func(i seq.Iter[int]) seq.Iter[int] { return i.Skip(1) },
//		func(i seq.Iter[int]) seq.Iter[int] { return i.Take(3) },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	out := value
	for _, fn := range fns {
		out = fn(out)
	}
	return out
}

// Compose composes fns right to left: Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		out := value
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}
