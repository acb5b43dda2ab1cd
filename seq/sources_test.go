package seq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/lazyiter/fp"
	"github.com/charmingruby/lazyiter/option"
	"github.com/charmingruby/lazyiter/seq"
)

func TestEmpty(t *testing.T) {
	e := seq.Empty[string]()
	assert.True(t, e.Next().IsNone())
	assertHint(t, e, 0, option.Some(0))
}

func TestOnce(t *testing.T) {
	o := seq.Once(7)
	assertHint(t, o, 1, option.Some(1))
	assert.Equal(t, 7, o.Next().UnsafeGet())
	assert.True(t, o.Next().IsNone())
	assertHint(t, o, 0, option.Some(0))
}

func TestOnceWithIsLazy(t *testing.T) {
	calls := 0
	o := seq.OnceWith(func() int { calls++; return 42 })
	assert.Zero(t, calls)

	assert.Equal(t, []int{42}, seq.Collect[int](o))
	assert.True(t, o.Next().IsNone())
	assert.Equal(t, 1, calls)
}

func TestRepeat(t *testing.T) {
	r := seq.Repeat("go")
	assertHint(t, r, math.MaxInt, option.None[int]())
	assert.Equal(t, "go", r.Nth(1_000_000).UnsafeGet())
	assert.Equal(t, []string{"go", "go", "go"}, seq.Collect[string](seq.Take[string](r, 3)))
}

func TestRepeatWith(t *testing.T) {
	n := 0
	counter := seq.RepeatWith(func() int { n++; return n })
	assert.Equal(t, []int{1, 2, 3}, seq.Collect[int](seq.Take[int](counter, 3)))

	zeros := seq.RepeatWith(fp.Constant(0))
	assert.Equal(t, []int{0, 0}, seq.Collect[int](seq.Take[int](zeros, 2)))
}

func TestFromFn(t *testing.T) {
	n := 0
	upToThree := seq.FromFn(func() option.Option[int] {
		if n == 3 {
			return option.None[int]()
		}
		n++
		return option.Some(n)
	})
	assert.Equal(t, []int{1, 2, 3}, seq.Collect[int](upToThree))
	assertHint(t, seq.Fuse[int](upToThree), 0, option.None[int]())
}

func TestIterate(t *testing.T) {
	powers := seq.Iterate(1, func(v int) int { return v * 2 })
	assert.Equal(t, []int{1, 2, 4, 8, 16}, seq.Collect[int](seq.Take[int](powers, 5)))
}

func TestRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int
	}{
		{name: "ascending", start: 2, end: 5, want: []int{2, 3, 4}},
		{name: "empty", start: 3, end: 3, want: []int{}},
		{name: "inverted", start: 5, end: 1, want: []int{}},
		{name: "negative", start: -2, end: 1, want: []int{-2, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := seq.Range(tt.start, tt.end)
			assertHint(t, r, len(tt.want), option.Some(len(tt.want)))
			assert.Equal(t, tt.want, seq.Collect[int](r))
		})
	}
}

func TestRangeFullSpanOfSmallTypes(t *testing.T) {
	r := seq.Range[int8](math.MinInt8, math.MaxInt8)
	assertHint(t, r, 255, option.Some(255))

	assert.Equal(t, int8(100), r.Nth(228).UnsafeGet())
	assert.Equal(t, 26, seq.Count[int8](r))

	u := seq.Range[uint8](250, 255)
	assert.Equal(t, []uint8{250, 251, 252, 253, 254}, seq.Collect[uint8](u))
}
