package telemetry

import (
	"log/slog"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

// logifaceCollector adapts Records onto a logiface.Logger backed by a slog
// handler, the same logging stack the teacher's own modules use.
type logifaceCollector struct {
	logger *logiface.Logger[*islog.Event]
}

// NewLogifaceCollector builds a [Collector] that writes every Record as one
// structured log line through handler, via logiface's fluent builder API.
func NewLogifaceCollector(handler slog.Handler) Collector {
	return &logifaceCollector{
		logger: logiface.New[*islog.Event](islog.NewLogger(handler)),
	}
}

func (c *logifaceCollector) Collect(r Record) {
	b := c.logger.Build(toLogifaceLevel(r.Severity))
	if b == nil {
		return
	}
	b = b.Str("kind", r.Kind.String()).
		Uint64("span", uint64(r.Span))
	if r.Link != 0 {
		b = b.Uint64("link", uint64(r.Link))
	}
	if r.Name != "" {
		b = b.Str("name", r.Name)
	}
	for _, a := range r.Attributes {
		switch v := a.Value.(type) {
		case string:
			b = b.Str(a.Key, v)
		case bool:
			b = b.Bool(a.Key, v)
		case int64:
			b = b.Int64(a.Key, v)
		case float64:
			b = b.Float64(a.Key, v)
		default:
			b = b.Any(a.Key, v)
		}
	}
	msg := r.Message
	if msg == "" {
		msg = r.Kind.String()
	}
	b.Log(msg)
}

func toLogifaceLevel(s Severity) logiface.Level {
	switch s {
	case SeverityTrace:
		return logiface.LevelTrace
	case SeverityDebug:
		return logiface.LevelDebug
	case SeverityInfo:
		return logiface.LevelInformational
	case SeverityWarn:
		return logiface.LevelWarning
	case SeverityError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}

func (k Kind) String() string {
	switch k {
	case SpanCreate:
		return "span_create"
	case SpanEnter:
		return "span_enter"
	case SpanExit:
		return "span_exit"
	case SpanClose:
		return "span_close"
	case SpanEvent:
		return "span_event"
	case SpanLink:
		return "span_link"
	case SpanAttribute:
		return "span_attribute"
	case LogMessage:
		return "log_message"
	default:
		return "unknown"
	}
}
