package actorrt

import "time"

// executeOptions holds the resolved configuration for one Execute run.
// Mirrors the functional-options pattern used throughout the teacher's
// eventloop package (see eventloop/options.go).
type executeOptions struct {
	drainTimeout time.Duration
}

func resolveExecuteOptions(opts []ExecuteOption) *executeOptions {
	cfg := &executeOptions{}
	for _, o := range opts {
		if o != nil {
			o.applyExecute(cfg)
		}
	}
	return cfg
}

// ExecuteOption configures one [Execute] call.
type ExecuteOption interface {
	applyExecute(*executeOptions)
}

type executeOptionFunc func(*executeOptions)

func (f executeOptionFunc) applyExecute(cfg *executeOptions) { f(cfg) }

// WithDrainTimeout bounds how long Execute waits, after the first actor
// returns, for the remaining actors to unwind following context
// cancellation, before returning control to the caller. The default (zero)
// means Execute returns immediately without waiting for the rest: this
// matches the original system's "drop the actor set" semantics, where
// unwinding the remaining futures is not something the caller waits on.
func WithDrainTimeout(d time.Duration) ExecuteOption {
	return executeOptionFunc(func(cfg *executeOptions) {
		cfg.drainTimeout = d
	})
}
