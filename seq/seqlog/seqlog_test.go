package seqlog_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyiter/seq"
	"github.com/charmingruby/lazyiter/seq/seqlog"
)

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, sc.Err())
	return events
}

func TestTraceLogsItemsAndExhaustion(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	traced := seqlog.Trace[int](seq.FromSlice([]int{10, 20}), logger, seqlog.WithName("numbers"))

	assert.Equal(t, []int{10, 20}, seq.Collect[int](traced))
	assert.Equal(t, 2, traced.Produced())

	events := decodeEvents(t, &buf)
	require.Len(t, events, 3)

	assert.Equal(t, "item produced", events[0]["message"])
	assert.Equal(t, "numbers", events[0][seqlog.FieldSeq])
	assert.Equal(t, "debug", events[0]["level"])
	assert.EqualValues(t, 0, events[0][seqlog.FieldIndex])
	assert.EqualValues(t, 10, events[0][seqlog.FieldItem])
	assert.EqualValues(t, 1, events[1][seqlog.FieldIndex])
	assert.EqualValues(t, 20, events[1][seqlog.FieldItem])

	assert.Equal(t, "sequence exhausted", events[2]["message"])
	assert.EqualValues(t, 2, events[2][seqlog.FieldProduced])
}

func TestTraceLogsExhaustionOnce(t *testing.T) {
	var buf bytes.Buffer
	traced := seqlog.Trace[int](seq.Empty[int](), zerolog.New(&buf))

	assert.True(t, traced.Next().IsNone())
	assert.True(t, traced.Next().IsNone())

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "seq", events[0][seqlog.FieldSeq])
}

func TestTraceOptions(t *testing.T) {
	var buf bytes.Buffer
	traced := seqlog.Trace[string](
		seq.FromSlice([]string{"secret"}),
		zerolog.New(&buf),
		seqlog.WithLevel(zerolog.InfoLevel),
		seqlog.WithValues(false),
	)

	traced.Next()

	events := decodeEvents(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "info", events[0]["level"])
	assert.NotContains(t, events[0], seqlog.FieldItem)
}

func TestTraceRespectsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	traced := seqlog.Trace[int](seq.Range(0, 3), logger)

	assert.Equal(t, 3, seq.Count[int](traced))
	assert.Zero(t, buf.Len())
}

func TestTraceSizeHintAndClone(t *testing.T) {
	var buf bytes.Buffer
	traced := seqlog.Trace[int](seq.Range(0, 4), zerolog.New(&buf))
	traced.Next()

	lower, upper := traced.SizeHint()
	assert.Equal(t, 3, lower)
	assert.Equal(t, 3, upper.UnsafeGet())

	cp, ok := traced.Clone()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(cp))
	assert.Equal(t, []int{1, 2, 3}, seq.Collect[int](traced))
}

func TestTraceCloneOfUncloneable(t *testing.T) {
	var buf bytes.Buffer
	traced := seqlog.Trace[int](seq.RepeatWith(func() int { return 1 }), zerolog.New(&buf))

	_, ok := traced.Clone()
	assert.False(t, ok)
}
