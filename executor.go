package actorrt

import (
	"context"
	"errors"
	"time"

	"github.com/veecle/actorrt/telemetry"
)

type executorResult struct {
	name string
	err  error
}

// runExecutor starts one goroutine per actor spec — each running its own
// construct-then-Run sequence — and returns as soon as the first one
// completes, canceling the rest via ctx. Construction and Run share a
// goroutine per actor, but run concurrently across actors, the goroutine
// translation of the original's "the executor terminates all other actors
// ... by dropping the set": Go has no equivalent of dropping a future
// mid-poll, so cancellation is the signal every blocking call (an
// InitializedReader's construction, Writer.Ready, Reader.WaitForUpdate, ...)
// is required to respect.
func runExecutor(ctx context.Context, specs []ActorSpec, ds *Datastore, cfg *executeOptions) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan executorResult, len(specs))
	for _, s := range specs {
		s := s
		go func() {
			actor, err := s.construct(runCtx, ds)
			if err != nil {
				results <- executorResult{name: s.name, err: &constructError{actor: s.name, err: err}}
				return
			}
			results <- executorResult{name: s.name, err: actor.Run(runCtx)}
		}()
	}

	first := <-results
	cancel()

	if cfg.drainTimeout > 0 {
		drain(results, len(specs)-1, cfg.drainTimeout)
	}

	if first.err != nil {
		var ce *constructError
		if errors.As(first.err, &ce) {
			select {
			case <-ctx.Done():
				return ErrExecuteCanceled
			default:
			}
			return first.err
		}
		telemetry.Log(ctx, telemetry.SeverityError, "actor terminated with error",
			telemetry.String("actor", first.name))
		return &actorError{actor: first.name, err: first.err}
	}
	return nil
}

// drain waits up to timeout for the remaining actor goroutines to report
// back after cancellation, purely so a caller that opted into
// [WithDrainTimeout] doesn't return while goroutines are still unwinding.
// Results are otherwise discarded: only the first actor's outcome is
// meaningful (spec.md §4.6).
func drain(results <-chan executorResult, remaining int, timeout time.Duration) {
	if remaining <= 0 {
		return
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for remaining > 0 {
		select {
		case <-results:
			remaining--
		case <-deadline.C:
			return
		}
	}
}
