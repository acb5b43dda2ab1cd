package seq_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyiter/option"
	"github.com/charmingruby/lazyiter/seq"
)

func TestFromSliceBoundsFixedAtConstruction(t *testing.T) {
	values := make([]int, 2, 8)
	values[0], values[1] = 1, 2
	s := seq.FromSlice(values)
	values = append(values, 3)

	assertHint(t, s, 2, option.Some(2))
	assert.Equal(t, []int{1, 2}, seq.Collect[int](s))
	assert.Len(t, values, 3)
}

func TestSliceIterAsSlice(t *testing.T) {
	s := seq.FromSlice([]string{"a", "b", "c", "d"})
	s.Next()
	s.NextBack()
	assert.Equal(t, []string{"b", "c"}, s.AsSlice())
}

func TestFromSet(t *testing.T) {
	set := map[string]struct{}{"x": {}, "y": {}, "z": {}}
	members := seq.FromSet(set)
	assertHint(t, members, 3, option.Some(3))

	delete(set, "x")
	assert.ElementsMatch(t, []string{"x", "y", "z"}, seq.Collect[string](members), "snapshot at construction")
}

func TestMapValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assert.ElementsMatch(t, []int{1, 2, 3}, seq.Collect[int](seq.MapValues(m)))

	sorted := seq.SortedMapValues(map[int]string{3: "c", 1: "a", 2: "b"})
	assertHint(t, sorted, 3, option.Some(3))
	assert.Equal(t, []string{"a", "b", "c"}, seq.Collect[string](sorted))
}

func TestFromSeq(t *testing.T) {
	pulled := seq.FromSeq(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, seq.Collect[int](pulled))
	assert.True(t, pulled.Next().IsNone())

	keys := seq.FromSeq(maps.Keys(map[string]bool{"only": true}))
	assert.Equal(t, "only", keys.Next().UnsafeGet())
	keys.Stop()
}

func TestFromSeqStopReleasesProducer(t *testing.T) {
	cleaned := false
	producer := func(yield func(int) bool) {
		defer func() { cleaned = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	p := seq.FromSeq(producer)
	assert.Equal(t, []int{0, 1, 2}, seq.Collect[int](seq.Take[int](p, 3)))
	assert.False(t, cleaned)

	p.Stop()
	assert.True(t, cleaned)
	assert.True(t, p.Next().IsNone())
	p.Stop()
}

func TestValues(t *testing.T) {
	src := seq.Range(0, 10)
	var got []int
	for v := range seq.Values[int](src) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 4, src.Next().UnsafeGet(), "breaking leaves the rest in the sequence")

	assert.Equal(t, []int{2, 4}, slices.Collect(seq.Values[int](seq.Filter[int](seq.Range(1, 5), isEven))))
}

func TestEnumerated(t *testing.T) {
	got := map[int]string{}
	for i, s := range seq.Enumerated[string](seq.FromSlice([]string{"a", "b"})) {
		got[i] = s
	}
	require.Len(t, got, 2)
	assert.Equal(t, map[int]string{0: "a", 1: "b"}, got)
}

func TestRoundTripThroughIterSeq(t *testing.T) {
	back := seq.FromSeq(seq.Values[int](seq.Range(0, 4)))
	assert.Equal(t, []int{0, 1, 2, 3}, seq.Collect[int](back))
}
