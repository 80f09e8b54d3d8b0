// Package telemetry is the runtime's "to telemetry" sink: every slot write,
// generation wait, and diagnostic warning the core emits as a single tagged
// [Record] passed to a [Collector]. The default Collector is a no-op, so a
// program that never calls [SetCollector] pays nothing for instrumentation;
// [NewLogifaceCollector] adapts Records onto a structured logger for programs
// that want them.
package telemetry

import (
	"sync/atomic"
	"time"
)

// Kind identifies what a [Record] reports. The original system exposes these
// as distinct collector methods (new_span, enter_span, exit_span, close_span,
// span_event, span_link, span_attribute, log_message); Go collapses them into
// one tagged union so [Collector] stays a single-method interface, matching
// how the runtime's own logiface facade models a record as one Event type.
type Kind int

const (
	// SpanCreate reports that a new Span began.
	SpanCreate Kind = iota
	// SpanEnter reports a Span became the active span on its goroutine.
	SpanEnter
	// SpanExit reports a Span stopped being the active span on its goroutine.
	SpanExit
	// SpanClose reports a Span ended.
	SpanClose
	// SpanEvent reports a point-in-time event attached to a span.
	SpanEvent
	// SpanLink reports that a span references another, unrelated span
	// (spec: a written value's span is linked from the span of the read
	// that observes it, not made a parent, since the write long since
	// completed by the time any reader sees it).
	SpanLink
	// SpanAttribute reports a key/value attribute attached to a span.
	SpanAttribute
	// LogMessage reports a standalone, severity-leveled log line.
	LogMessage
)

// Severity mirrors the Severity levels the original telemetry protocol
// defines, narrowed to the ones this runtime actually emits.
type Severity int

const (
	SeverityTrace Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityTrace:
		return "trace"
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// SpanID identifies a span within a process. The zero value denotes "no
// span."
type SpanID uint64

// Attribute is one key/value pair attached to a span or a log message. Value
// is one of string, bool, int64, or float64, matching the attribute value
// variants the original telemetry protocol defines.
type Attribute struct {
	Key   string
	Value any
}

// String builds a string-valued [Attribute].
func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }

// Bool builds a bool-valued [Attribute].
func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }

// Int64 builds an int64-valued [Attribute].
func Int64(key string, value int64) Attribute { return Attribute{Key: key, Value: value} }

// Float64 builds a float64-valued [Attribute].
func Float64(key string, value float64) Attribute { return Attribute{Key: key, Value: value} }

// Record is the one shape every telemetry event takes before reaching a
// [Collector].
type Record struct {
	Kind       Kind
	Time       time.Time
	Span       SpanID
	Link       SpanID
	Name       string
	Severity   Severity
	Message    string
	Attributes []Attribute
}

// Collector receives every [Record] the runtime produces. Implementations
// must not block indefinitely: a slow collector stalls the actor that
// triggered the record.
type Collector interface {
	Collect(Record)
}

type noopCollector struct{}

func (noopCollector) Collect(Record) {}

var current atomic.Value // Collector

func init() {
	current.Store(collectorBox{noopCollector{}})
}

// collectorBox exists because atomic.Value requires every Store to use the
// same concrete type, and Collector is an interface.
type collectorBox struct{ Collector }

// SetCollector installs c as the process-wide telemetry sink. Passing nil
// restores the no-op default. Typically called once, near the top of main,
// before [Execute] runs.
func SetCollector(c Collector) {
	if c == nil {
		c = noopCollector{}
	}
	current.Store(collectorBox{c})
}

func activeCollector() Collector {
	return current.Load().(collectorBox).Collector
}

func emit(r Record) {
	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	activeCollector().Collect(r)
}
