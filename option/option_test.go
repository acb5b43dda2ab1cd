package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyiter/option"
)

func TestZeroValueIsNone(t *testing.T) {
	var zero option.Option[int]

	assert.True(t, zero.IsNone())
	assert.Nil(t, zero.ToPtr())
	assert.Equal(t, "None", zero.String())
}

func TestSomeHoldsNil(t *testing.T) {
	var value error
	opt := option.Some(value)

	require.True(t, opt.IsSome(), "Some(nil) is still present")
	got, ok := opt.Get()
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestGetOrElse(t *testing.T) {
	calls := 0
	fallback := func() int { calls++; return -1 }

	assert.Equal(t, 4, option.Some(4).GetOrElse(0))
	assert.Equal(t, 0, option.None[int]().GetOrElse(0))
	assert.Equal(t, 4, option.Some(4).GetOrElseFunc(fallback))
	assert.Zero(t, calls, "fallback must not run for Some")
	assert.Equal(t, -1, option.None[int]().GetOrElseFunc(fallback))
	assert.Equal(t, 1, calls)
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 1, option.Some(1).OrElse(option.Some(2)).UnsafeGet())
	assert.Equal(t, 2, option.None[int]().OrElse(option.Some(2)).UnsafeGet())
	assert.True(t, option.None[int]().OrElseFunc(option.None[int]).IsNone())
}

func TestUnsafeGetPanicsOnNone(t *testing.T) {
	assert.Panics(t, func() { option.None[string]().UnsafeGet() })
}

func TestFilterAndIsSomeAnd(t *testing.T) {
	positive := func(v int) bool { return v > 0 }

	tests := []struct {
		name string
		opt  option.Option[int]
		want bool
	}{
		{name: "matching", opt: option.Some(3), want: true},
		{name: "rejected", opt: option.Some(-3), want: false},
		{name: "none", opt: option.None[int](), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opt.IsSomeAnd(positive))
			assert.Equal(t, tt.want, tt.opt.Filter(positive).IsSome())
		})
	}
}

func TestFoldFlatMap(t *testing.T) {
	describe := func(o option.Option[int]) string {
		return option.Fold(o, func() string { return "empty" }, func(v int) string {
			return "n=" + strconv.Itoa(v)
		})
	}
	assert.Equal(t, "n=7", describe(option.Some(7)))
	assert.Equal(t, "empty", describe(option.None[int]()))

	half := func(v int) option.Option[int] { return option.FromOk(v/2, v%2 == 0) }
	assert.Equal(t, 5, option.FlatMap(option.Some(10), half).UnsafeGet())
	assert.True(t, option.FlatMap(option.Some(9), half).IsNone())
	assert.True(t, option.FlatMap(option.None[int](), half).IsNone())
}

func TestTapRunsOnlyForSome(t *testing.T) {
	var seen []int
	record := func(v int) { seen = append(seen, v) }

	assert.Equal(t, 5, option.Tap(option.Some(5), record).UnsafeGet())
	assert.True(t, option.Tap(option.None[int](), record).IsNone())
	assert.Equal(t, []int{5}, seen)
}

func TestZip(t *testing.T) {
	pair, ok := option.Zip(option.Some("a"), option.Some(2)).Get()
	require.True(t, ok)
	assert.Equal(t, "a", pair.First)
	assert.Equal(t, 2, pair.Second)

	assert.True(t, option.Zip(option.Some(1), option.None[int]()).IsNone())
	assert.True(t, option.Zip(option.None[int](), option.Some(1)).IsNone())
}

func TestSequenceAndTraverse(t *testing.T) {
	values, ok := option.Sequence([]option.Option[int]{option.Some(1), option.Some(2)}).Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, values)

	assert.True(t, option.Sequence([]option.Option[int]{option.Some(1), option.None[int]()}).IsNone())

	dropTwo := func(v int) option.Option[int] { return option.FromOk(v*2, v != 2) }
	assert.True(t, option.Traverse([]int{1, 2, 3}, dropTwo).IsNone())
	assert.Equal(t, []int{2, 6}, option.Traverse([]int{1, 3}, dropTwo).UnsafeGet())
}

func TestPointerInterop(t *testing.T) {
	ptr := option.Some(5).ToPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, 5, *ptr)

	assert.Equal(t, 5, option.FromPtr(ptr).UnsafeGet())
	assert.True(t, option.FromPtr[int](nil).IsNone())
	assert.True(t, option.FromOk(1, false).IsNone())
}

func TestToResult(t *testing.T) {
	errMissing := errors.New("missing")

	v, err := option.Some(42).ToResult(func() error { return errMissing }).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = option.None[int]().ToResult(func() error { return errMissing }).Unwrap()
	assert.ErrorIs(t, err, errMissing)

	_, err = option.None[int]().ToResult(nil).Unwrap()
	assert.EqualError(t, err, "option: missing value")
}

func TestEqualAndString(t *testing.T) {
	assert.True(t, option.Equal(option.None[int](), option.None[int]()))
	assert.False(t, option.Equal(option.Some(1), option.None[int]()))
	assert.True(t, option.Equal(option.Some("a"), option.Some("a")))
	assert.False(t, option.Equal(option.Some("a"), option.Some("b")))

	assert.Equal(t, "Some(7)", option.Some(7).String())
	assert.Equal(t, "None", option.None[int]().String())
}
