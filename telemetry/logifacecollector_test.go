package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogifaceCollectorWritesStructuredLogLines(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	collector := NewLogifaceCollector(handler)

	collector.Collect(Record{
		Kind:       LogMessage,
		Span:       7,
		Severity:   SeverityWarn,
		Message:    "missed update",
		Attributes: []Attribute{String("type", "int"), Int64("gap", 2)},
	})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "missed update", decoded["msg"])
	require.Equal(t, "log_message", decoded["kind"])
	require.Equal(t, "int", decoded["type"])
	require.Equal(t, float64(2), decoded["gap"])
}

func TestLogifaceCollectorFallsBackToKindAsMessage(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	collector := NewLogifaceCollector(handler)

	collector.Collect(Record{Kind: SpanCreate, Span: 1, Name: "modify"})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "span_create", decoded["msg"])
	require.Equal(t, "modify", decoded["name"])
}
