package telemetry

import (
	"context"
	"time"

	"github.com/joeycumines/go-catrate"
)

// missedUpdateLimiter throttles the "missed update" warning to at most one
// per storable type per second, so a persistently slow reader cannot flood
// the collector with a warning on every single poll.
var missedUpdateLimiter = catrate.NewLimiter(map[time.Duration]int{time.Second: 1})

// WarnMissedUpdate reports that a Reader observed a generation gap greater
// than one, i.e. a write happened that this reader never directly saw.
// Throttled per storable type name via [catrate].
func WarnMissedUpdate(ctx context.Context, typeName string, gap uint64) {
	if _, ok := missedUpdateLimiter.Allow(typeName); !ok {
		return
	}
	Log(ctx, SeverityWarn, "missed update",
		String("type", typeName),
		Int64("gap", int64(gap)),
	)
}

// WarnDropped reports that an IPC output actor dropped a value instead of
// blocking, per [ipc.SendPolicy]'s drop branch. Throttled per channel name.
func WarnDropped(ctx context.Context, name string) {
	if _, ok := missedUpdateLimiter.Allow("ipc-drop:" + name); !ok {
		return
	}
	Log(ctx, SeverityWarn, "dropped outbound message", String("channel", name))
}
