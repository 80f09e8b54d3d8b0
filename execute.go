package actorrt

import (
	"context"
	"reflect"
)

// Execute validates the topology implied by specs, then constructs and runs
// every actor concurrently against a fresh [Datastore], until the first one
// reports a definitive result. Topology validation (spec.md §4.4) happens
// synchronously, before any actor is constructed: a violation panics
// immediately, naming every actor involved (a storable type that is read but
// never written is reported by its type name alone), as the original system's
// compile-time trait-bound checks would have, had they been checkable at
// compile time in Go.
//
// An actor's construction (its async "request" phase, e.g. an
// InitializedReader field blocking for its slot's first value) runs
// concurrently with every other actor's construction and Run, not before it:
// one actor's first write often has to happen during another's Run for a
// third actor's construction to ever unblock, so actors cannot be fully
// constructed as a batch before any of them starts running.
//
// Execute returns the first actor's result: nil from a validator actor
// signals "the property under test held" (spec.md §8); a non-nil error is
// wrapped so [ActorName] can recover which actor produced it.
func Execute(ctx context.Context, specs []ActorSpec, opts ...ExecuteOption) error {
	if len(specs) == 0 {
		return ErrNoActors
	}
	cfg := resolveExecuteOptions(opts)

	names := make([]string, len(specs))
	reqTypes := make([]reflect.Type, len(specs))
	for i, s := range specs {
		names[i] = s.name
		reqTypes[i] = s.reqType
	}
	readerCounts := validateTopology(names, reqTypes)

	ds := newDatastore(readerCounts)
	return runExecutor(ctx, specs, ds, cfg)
}
