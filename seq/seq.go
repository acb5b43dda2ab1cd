package seq

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/lazyiter/option"
	"github.com/charmingruby/lazyiter/result"
)

// Number is the element constraint of Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// Fold pulls every item in order and combines it into the accumulator.
//
// Example:
//
//	total := seq.Fold(seq.FromSlice([]int{1, 2, 3}), 0, func(acc, v int) int { return acc + v })
func Fold[T any, B any](it Iterator[T], init B, fn func(B, T) B) B {
	acc := init
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// TryFold is Fold with early exit: when fn returns None the fold stops,
// returns None, and the items after the current one stay in the sequence.
func TryFold[T any, B any](it Iterator[T], init B, fn func(B, T) option.Option[B]) option.Option[B] {
	acc := init
	for {
		v, ok := it.Next().Get()
		if !ok {
			return option.Some(acc)
		}
		next, ok := fn(acc, v).Get()
		if !ok {
			return option.None[B]()
		}
		acc = next
	}
}

// Count consumes the sequence and returns how many items it produced.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(counter); ok {
		return c.Count()
	}
	return Fold(it, 0, func(n int, _ T) int { return n + 1 })
}

// Last consumes the sequence and returns its final item.
func Last[T any](it Iterator[T]) option.Option[T] {
	return Fold(it, option.None[T](), func(_ option.Option[T], v T) option.Option[T] {
		return option.Some(v)
	})
}

// AdvanceBy discards up to n items. It returns an *AdvanceError matching
// ErrExhausted when the sequence ends first.
func AdvanceBy[T any](it Iterator[T], n int) error {
	for i := 0; i < n; i++ {
		if it.Next().IsNone() {
			return &AdvanceError{Requested: n, Remaining: n - i}
		}
	}
	return nil
}

// Nth returns the item at zero-based position n, consuming it and everything
// before it. A negative n yields None without consuming anything.
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	if n < 0 {
		return option.None[T]()
	}
	if f, ok := it.(nther[T]); ok {
		return f.Nth(n)
	}
	if AdvanceBy(it, n) != nil {
		return option.None[T]()
	}
	return it.Next()
}

// Find returns the first item satisfying predicate. Items after the match are
// not consumed.
func Find[T any](it Iterator[T], predicate func(T) bool) option.Option[T] {
	found := option.None[T]()
	TryFold(it, struct{}{}, func(acc struct{}, v T) option.Option[struct{}] {
		if predicate(v) {
			found = option.Some(v)
			return option.None[struct{}]()
		}
		return option.Some(acc)
	})
	return found
}

// FindMap returns the first Some produced by fn.
func FindMap[T any, B any](it Iterator[T], fn func(T) option.Option[B]) option.Option[B] {
	found := option.None[B]()
	TryFold(it, struct{}{}, func(acc struct{}, v T) option.Option[struct{}] {
		if out := fn(v); out.IsSome() {
			found = out
			return option.None[struct{}]()
		}
		return option.Some(acc)
	})
	return found
}

// ForEach calls fn for every item.
func ForEach[T any](it Iterator[T], fn func(T)) {
	Fold(it, struct{}{}, func(acc struct{}, v T) struct{} {
		fn(v)
		return acc
	})
}

// TryForEach calls fn for every item until fn returns false. It reports
// whether the sequence was fully drained.
func TryForEach[T any](it Iterator[T], fn func(T) bool) bool {
	return TryFold(it, struct{}{}, func(acc struct{}, v T) option.Option[struct{}] {
		if !fn(v) {
			return option.None[struct{}]()
		}
		return option.Some(acc)
	}).IsSome()
}

// TryForEachErr calls fn for every item and stops at the first error.
func TryForEachErr[T any](it Iterator[T], fn func(T) error) error {
	return TryFoldErr(it, struct{}{}, func(acc struct{}, v T) (struct{}, error) {
		return acc, fn(v)
	}).Err()
}

// TryFoldErr folds with a fallible combine function, stopping at the first
// error. The items after the failing one stay in the sequence.
//
// Example:
//
//	total, err := seq.TryFoldErr(lines, 0, func(acc int, s string) (int, error) {
//		n, err := strconv.Atoi(s)
//		return acc + n, err
//	}).Unwrap()
func TryFoldErr[T any, B any](it Iterator[T], init B, fn func(B, T) (B, error)) result.Result[B] {
	var failure error
	acc := TryFold(it, init, func(acc B, v T) option.Option[B] {
		next, err := fn(acc, v)
		if err != nil {
			failure = err
			return option.None[B]()
		}
		return option.Some(next)
	})
	if failure != nil {
		return result.Err[B](failure)
	}
	return result.Ok(acc.UnsafeGet())
}

// CollectResults collects the values of a sequence of Results, stopping at the
// first Err.
func CollectResults[T any](it Iterator[result.Result[T]]) result.Result[[]T] {
	return TryFoldErr(it, []T{}, func(acc []T, r result.Result[T]) ([]T, error) {
		v, err := r.Unwrap()
		if err != nil {
			return acc, err
		}
		return append(acc, v), nil
	})
}

// Reduce folds the sequence using its first item as the initial accumulator.
// It is None for an empty sequence.
func Reduce[T any](it Iterator[T], fn func(T, T) T) option.Option[T] {
	first, ok := it.Next().Get()
	if !ok {
		return option.None[T]()
	}
	return option.Some(Fold(it, first, fn))
}

// All reports whether every item satisfies predicate, stopping at the first
// that does not. An empty sequence yields true.
func All[T any](it Iterator[T], predicate func(T) bool) bool {
	return TryFold(it, struct{}{}, func(acc struct{}, v T) option.Option[struct{}] {
		if !predicate(v) {
			return option.None[struct{}]()
		}
		return option.Some(acc)
	}).IsSome()
}

// Any reports whether some item satisfies predicate, stopping at the first
// match.
func Any[T any](it Iterator[T], predicate func(T) bool) bool {
	return Find(it, predicate).IsSome()
}

// Position returns the index of the first item satisfying predicate.
func Position[T any](it Iterator[T], predicate func(T) bool) option.Option[int] {
	found := option.None[int]()
	TryFold(it, 0, func(i int, v T) option.Option[int] {
		if predicate(v) {
			found = option.Some(i)
			return option.None[int]()
		}
		return option.Some(i + 1)
	})
	return found
}

// Collect drains the sequence into a slice. The result is never nil.
func Collect[T any](it Iterator[T]) []T {
	lower, _ := SizeHint(it)
	out := make([]T, 0, min(lower, 1024))
	return Fold(it, out, func(acc []T, v T) []T { return append(acc, v) })
}

// Partition drains the sequence into the items satisfying predicate and the
// rest, both in production order.
func Partition[T any](it Iterator[T], predicate func(T) bool) ([]T, []T) {
	matches, rest := []T{}, []T{}
	ForEach(it, func(v T) {
		if predicate(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	})
	return matches, rest
}

// Unzip drains a sequence of pairs into two slices.
func Unzip[A any, B any](it Iterator[Pair[A, B]]) ([]A, []B) {
	left, right := []A{}, []B{}
	ForEach(it, func(p Pair[A, B]) {
		left = append(left, p.First)
		right = append(right, p.Second)
	})
	return left, right
}

// GroupBy drains the sequence into groups keyed by keySelector. Each group
// keeps production order.
func GroupBy[T any, K comparable](it Iterator[T], keySelector func(T) K) map[K][]T {
	groups := make(map[K][]T)
	ForEach(it, func(v T) {
		key := keySelector(v)
		groups[key] = append(groups[key], v)
	})
	return groups
}

// CollectMap drains a sequence of key/value pairs into a map. Later pairs
// overwrite earlier ones with the same key.
func CollectMap[K comparable, V any](it Iterator[Pair[K, V]]) map[K]V {
	out := make(map[K]V, min(Len(it), 1024))
	ForEach(it, func(p Pair[K, V]) {
		out[p.First] = p.Second
	})
	return out
}

// Eq reports whether two sequences produce equal items in the same order and
// end together. It stops at the first difference.
func Eq[T comparable](a, b Iterator[T]) bool {
	for {
		x, xok := a.Next().Get()
		y, yok := b.Next().Get()
		if xok != yok {
			return false
		}
		if !xok {
			return true
		}
		if x != y {
			return false
		}
	}
}

// Sum adds every item; an empty sequence sums to zero.
func Sum[T Number](it Iterator[T]) T {
	return Fold(it, T(0), func(acc, v T) T { return acc + v })
}

// Product multiplies every item; an empty sequence yields one.
func Product[T Number](it Iterator[T]) T {
	return Fold(it, T(1), func(acc, v T) T { return acc * v })
}

// Min returns the smallest item, the first one on ties.
func Min[T constraints.Ordered](it Iterator[T]) option.Option[T] {
	return MinBy(it, cmp.Compare[T])
}

// Max returns the largest item, the last one on ties.
func Max[T constraints.Ordered](it Iterator[T]) option.Option[T] {
	return MaxBy(it, cmp.Compare[T])
}

// MinBy returns the smallest item according to compare, the first on ties.
func MinBy[T any](it Iterator[T], compare func(a, b T) int) option.Option[T] {
	return Reduce(it, func(best, v T) T {
		if compare(v, best) < 0 {
			return v
		}
		return best
	})
}

// MaxBy returns the largest item according to compare, the last on ties.
func MaxBy[T any](it Iterator[T], compare func(a, b T) int) option.Option[T] {
	return Reduce(it, func(best, v T) T {
		if compare(v, best) >= 0 {
			return v
		}
		return best
	})
}
