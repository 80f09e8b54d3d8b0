package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	records []Record
}

func (c *recordingCollector) Collect(r Record) { c.records = append(c.records, r) }

func TestSetCollectorReceivesEmittedRecords(t *testing.T) {
	defer SetCollector(nil)

	rec := &recordingCollector{}
	SetCollector(rec)

	Event(context.Background(), "hello", String("key", "value"))

	require.Len(t, rec.records, 1)
	require.Equal(t, SpanEvent, rec.records[0].Kind)
	require.Equal(t, "hello", rec.records[0].Name)
	require.Equal(t, Attribute{Key: "key", Value: "value"}, rec.records[0].Attributes[0])
}

func TestSetCollectorNilRestoresNoop(t *testing.T) {
	rec := &recordingCollector{}
	SetCollector(rec)
	SetCollector(nil)

	Event(context.Background(), "ignored")

	require.Empty(t, rec.records, "resetting the collector to nil must stop routing to the old one")
}

func TestAttributeConstructors(t *testing.T) {
	require.Equal(t, Attribute{Key: "a", Value: "x"}, String("a", "x"))
	require.Equal(t, Attribute{Key: "b", Value: true}, Bool("b", true))
	require.Equal(t, Attribute{Key: "c", Value: int64(3)}, Int64("c", 3))
	require.Equal(t, Attribute{Key: "d", Value: 1.5}, Float64("d", 1.5))
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "warn", SeverityWarn.String())
	require.Equal(t, "unknown", Severity(99).String())
}
