// Package seqlog traces sequence pipelines through zerolog.
//
// Trace wraps any seq.Iterator and emits one event per produced item and a
// single event when the sequence reports exhaustion. Items pass through
// unchanged, so a trace can be spliced anywhere in a pipeline:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	evens := seqlog.Trace(seq.Filter(src, isEven), logger, seqlog.WithName("evens"))
package seqlog

import (
	"github.com/rs/zerolog"

	"github.com/charmingruby/lazyiter/option"
	"github.com/charmingruby/lazyiter/seq"
)

// Field names used on every trace event.
const (
	FieldSeq      = "seq"
	FieldIndex    = "index"
	FieldItem     = "item"
	FieldProduced = "produced"
)

const (
	msgItem      = "item produced"
	msgExhausted = "sequence exhausted"
)

type config struct {
	name   string
	level  zerolog.Level
	values bool
}

// Option configures a trace.
type Option func(*config)

// WithName tags every event with the pipeline stage name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLevel sets the level of the emitted events. The default is debug.
func WithLevel(level zerolog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithValues controls whether produced items are attached to their events.
// Items are logged by default; disable it for large or sensitive values.
func WithValues(enabled bool) Option {
	return func(c *config) { c.values = enabled }
}

// TraceIter logs what its inner sequence produces.
type TraceIter[T any] struct {
	inner     seq.Iterator[T]
	logger    zerolog.Logger
	cfg       config
	produced  int
	exhausted bool
}

// Trace wraps it so that every Next call is reported to logger.
func Trace[T any](it seq.Iterator[T], logger zerolog.Logger, opts ...Option) *TraceIter[T] {
	cfg := config{name: "seq", level: zerolog.DebugLevel, values: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TraceIter[T]{
		inner:  it,
		logger: logger.With().Str(FieldSeq, cfg.name).Logger(),
		cfg:    cfg,
	}
}

func (t *TraceIter[T]) Next() option.Option[T] {
	v, ok := t.inner.Next().Get()
	if !ok {
		if !t.exhausted {
			t.exhausted = true
			t.logger.WithLevel(t.cfg.level).Int(FieldProduced, t.produced).Msg(msgExhausted)
		}
		return option.None[T]()
	}

	event := t.logger.WithLevel(t.cfg.level).Int(FieldIndex, t.produced)
	if t.cfg.values {
		event = event.Interface(FieldItem, v)
	}
	event.Msg(msgItem)

	t.produced++
	return option.Some(v)
}

// Produced returns how many items have passed through the trace.
func (t *TraceIter[T]) Produced() int {
	return t.produced
}

func (t *TraceIter[T]) SizeHint() (int, option.Option[int]) {
	return seq.SizeHint(t.inner)
}

// Clone copies the trace together with its counters; both copies log to the
// same logger.
func (t *TraceIter[T]) Clone() (seq.Iterator[T], bool) {
	inner, ok := seq.Clone(t.inner).Get()
	if !ok {
		return nil, false
	}
	cp := *t
	cp.inner = inner
	return &cp, true
}
