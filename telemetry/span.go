package telemetry

import (
	"context"
	"sync/atomic"
)

type spanContextKey struct{}

var spanCounter atomic.Uint64

// Span is a unit of traced work, entered for the duration of a context and
// closed once. The zero value (via a nil *Span) is the "no span" state that
// [FromContext] returns when nothing called [NewSpan] on the chain.
type Span struct {
	id SpanID
}

// NewSpan starts a new span named name, attaches it to the returned context,
// and reports SpanCreate/SpanEnter records. Call [Span.End] when the
// traced work completes.
func NewSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, *Span) {
	s := &Span{id: SpanID(spanCounter.Add(1))}
	emit(Record{Kind: SpanCreate, Span: s.id, Name: name, Attributes: attrs})
	emit(Record{Kind: SpanEnter, Span: s.id})
	return context.WithValue(ctx, spanContextKey{}, s), s
}

// ID reports the span's identifier, or 0 for a nil Span.
func (s *Span) ID() SpanID {
	if s == nil {
		return 0
	}
	return s.id
}

// End reports SpanExit/SpanClose records. A nil Span is a no-op, so callers
// do not need to guard defer sites where a span may not have been started.
func (s *Span) End() {
	if s == nil {
		return
	}
	emit(Record{Kind: SpanExit, Span: s.id})
	emit(Record{Kind: SpanClose, Span: s.id})
}

// FromContext returns the active span attached to ctx, or nil if none.
func FromContext(ctx context.Context) *Span {
	s, _ := ctx.Value(spanContextKey{}).(*Span)
	return s
}

// Event reports a point-in-time SpanEvent against the context's active span.
func Event(ctx context.Context, name string, attrs ...Attribute) {
	emit(Record{Kind: SpanEvent, Span: FromContext(ctx).ID(), Name: name, Attributes: attrs})
}

// Link reports that the context's active span references link, without
// making it a parent. The runtime uses this to connect a Reader's observing
// span back to the Writer's span that produced the value, since the write
// has long since completed by the time any reader sees it.
func Link(ctx context.Context, link SpanID) {
	if link == 0 {
		return
	}
	emit(Record{Kind: SpanLink, Span: FromContext(ctx).ID(), Link: link})
}

// SetAttribute reports a key/value [Attribute] against the context's active
// span.
func SetAttribute(ctx context.Context, attr Attribute) {
	emit(Record{Kind: SpanAttribute, Span: FromContext(ctx).ID(), Attributes: []Attribute{attr}})
}

// Log reports a standalone, severity-leveled log line against the context's
// active span, if any.
func Log(ctx context.Context, severity Severity, message string, attrs ...Attribute) {
	emit(Record{Kind: LogMessage, Span: FromContext(ctx).ID(), Severity: severity, Message: message, Attributes: attrs})
}
