package seq

import (
	"math"

	"github.com/charmingruby/lazyiter/option"
)

// SizeHint returns the bounds it reports about its remaining length, or
// (0, None) when it does not implement SizeHinter.
func SizeHint[T any](it Iterator[T]) (int, option.Option[int]) {
	if h, ok := it.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, option.None[int]()
}

// Len returns the lower bound of the size hint. It is exact only for
// sequences whose hint is exact; adapters like Filter report zero.
func Len[T any](it Iterator[T]) int {
	lower, _ := SizeHint(it)
	return lower
}

// IsEmpty reports whether Len is zero.
func IsEmpty[T any](it Iterator[T]) bool {
	return Len(it) == 0
}

const maxInt = math.MaxInt

func exact(n int) (int, option.Option[int]) {
	return n, option.Some(n)
}

func unbounded() (int, option.Option[int]) {
	return maxInt, option.None[int]()
}

func saturatingAdd(a, b int) int {
	if a > maxInt-b {
		return maxInt
	}
	return a + b
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// checkedAdd adds two upper bounds; overflow or an unknown side yields None.
func checkedAdd(a, b option.Option[int]) option.Option[int] {
	x, ok := a.Get()
	if !ok {
		return a
	}
	y, ok := b.Get()
	if !ok || x > maxInt-y {
		return option.None[int]()
	}
	return option.Some(x + y)
}

// minUpper returns the tighter of two upper bounds, treating None as infinity.
func minUpper(a, b option.Option[int]) option.Option[int] {
	x, aok := a.Get()
	y, bok := b.Get()
	switch {
	case !aok:
		return b
	case !bok:
		return a
	default:
		return option.Some(min(x, y))
	}
}
