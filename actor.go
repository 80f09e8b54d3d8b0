package actorrt

import (
	"context"
	"reflect"
)

// Actor is one independently scheduled unit of work in an [Execute] run.
//
// By contract, Run only returns in one of two cases: its context was
// canceled (any error, typically ctx.Err(), is fine), or the actor
// encountered a genuine failure. A production actor that never intends to
// stop on its own returns only via context cancellation — the original
// system expresses this with an uninhabited return type; Go has none, so
// this is a documented convention rather than something the type system
// enforces. A validator actor used in tests is the deliberate exception: it
// returns nil to signal "the property under test held," per spec.md §8.
type Actor interface {
	Run(ctx context.Context) error
}

// ActorSpec names one actor and knows how to construct it against a
// [Datastore], once topology validation has already passed.
type ActorSpec struct {
	name      string
	reqType   reflect.Type
	construct func(ctx context.Context, ds *Datastore) (Actor, error)
}

// Name reports the actor's name, used in topology panics and actor-error
// wrapping.
func (s ActorSpec) Name() string { return s.name }

// NewActor registers an actor named name. newActor is called once per
// [Execute] run, after the actor's store request (type Req) has been bound
// against the datastore — which may block (an InitializedReader field waits
// for its slot's first value) — but newActor itself must not block or
// suspend; it only wires the bound handles into the actor's own state.
// initCtx is passed through unchanged, for actor-specific configuration that
// has nothing to do with the datastore (e.g. an IPC channel).
func NewActor[Req any, Ctx any](name string, newActor func(Req, Ctx) Actor, initCtx Ctx) ActorSpec {
	reqType := reflect.TypeFor[Req]()
	return ActorSpec{
		name:    name,
		reqType: reqType,
		construct: func(ctx context.Context, ds *Datastore) (Actor, error) {
			reqValue, err := bindRequest(ctx, reqType, ds, name)
			if err != nil {
				return nil, err
			}
			req := reqValue.Interface().(Req)
			return newActor(req, initCtx), nil
		},
	}
}
