package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSpanAttachesToContextAndReportsLifecycle(t *testing.T) {
	defer SetCollector(nil)
	rec := &recordingCollector{}
	SetCollector(rec)

	ctx, span := NewSpan(context.Background(), "work")
	require.NotZero(t, span.ID())
	require.Same(t, span, FromContext(ctx))

	span.End()

	var kinds []Kind
	for _, r := range rec.records {
		kinds = append(kinds, r.Kind)
	}
	require.Equal(t, []Kind{SpanCreate, SpanEnter, SpanExit, SpanClose}, kinds)
}

func TestFromContextReturnsNilWithoutASpan(t *testing.T) {
	require.Nil(t, FromContext(context.Background()))
}

func TestNilSpanMethodsAreNoops(t *testing.T) {
	var s *Span
	require.Equal(t, SpanID(0), s.ID())
	require.NotPanics(t, s.End)
}

func TestLinkIgnoresZeroSpanID(t *testing.T) {
	defer SetCollector(nil)
	rec := &recordingCollector{}
	SetCollector(rec)

	Link(context.Background(), 0)
	require.Empty(t, rec.records, "linking to the zero span id must not emit a record")

	Link(context.Background(), 5)
	require.Len(t, rec.records, 1)
	require.Equal(t, SpanID(5), rec.records[0].Link)
}
