package seq

import (
	"github.com/charmingruby/lazyiter/fp"
	"github.com/charmingruby/lazyiter/option"
)

// FlatMapIter maps every outer item to a sequence and produces the items of
// those sequences one after another.
type FlatMapIter[A any, B any] struct {
	outer Iterator[A]
	fn    func(A) Iterator[B]
	front Iterator[B]
	// outerDone is set once outer reports exhaustion; it is not pulled again.
	outerDone bool
}

// FlatMap maps each item to a sequence with fn and flattens the result. Each
// inner sequence is drained before the next outer item is pulled; empty or
// nil inner sequences are skipped.
func FlatMap[A any, B any](it Iterator[A], fn func(A) Iterator[B]) *FlatMapIter[A, B] {
	return &FlatMapIter[A, B]{outer: it, fn: fn}
}

// FlattenIter is the FlatMapIter produced by Flatten.
type FlattenIter[T any] = FlatMapIter[Iterator[T], T]

// Flatten produces the items of every inner sequence of it, in order.
func Flatten[T any](it Iterator[Iterator[T]]) *FlattenIter[T] {
	return FlatMap(it, fp.Identity[Iterator[T]])
}

func (f *FlatMapIter[A, B]) Next() option.Option[B] {
	for {
		if f.front != nil {
			if v := f.front.Next(); v.IsSome() {
				return v
			}
			f.front = nil
		}
		if f.outerDone {
			return none[B]()
		}
		v, ok := f.outer.Next().Get()
		if !ok {
			f.outerDone = true
			return none[B]()
		}
		f.front = f.fn(v)
	}
}

func (f *FlatMapIter[A, B]) SizeHint() (int, option.Option[int]) {
	lower, upper := 0, option.Some(0)
	if f.front != nil {
		lower, upper = SizeHint(f.front)
	}
	if f.outerDone {
		return lower, upper
	}
	if olo, ohi := SizeHint(f.outer); olo == 0 && option.Equal(ohi, option.Some(0)) {
		return lower, upper
	}
	return lower, option.None[int]()
}

func (f *FlatMapIter[A, B]) Clone() (Iterator[B], bool) {
	cp := &FlatMapIter[A, B]{fn: f.fn, outerDone: f.outerDone}
	if !f.outerDone {
		outer, ok := Clone(f.outer).Get()
		if !ok {
			return nil, false
		}
		cp.outer = outer
	}
	front, ok := cloneHalf(f.front)
	if !ok {
		return nil, false
	}
	cp.front = front
	return cp, true
}
