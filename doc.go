// Package actorrt implements a single-threaded, cooperatively scheduled
// dataflow runtime for embedded/automotive control software. Independent
// actors communicate exclusively through typed storage "slots" held in a
// shared [Datastore]: exactly one [Writer] publishes a value of a given type,
// and one or more [Reader] (or [ExclusiveReader]) handles observe it. A
// generation counter per slot, plus a second per-slot acknowledgement counter
// that the slot's readers count down, guarantees that every reader gets a
// chance to see a published value before the writer is allowed to publish
// again.
//
// # Topology
//
// The set of actors passed to [Execute] is validated before any of them run:
// every storable type written by some [Writer] must have at least one
// reader, every storable type read by some [ExclusiveReader] must have
// exactly one reader overall, and no storable type may have more than one
// writer. Violations panic with a message naming every participating actor,
// before any actor is constructed.
//
// # Concurrency model
//
// Actors run as goroutines, one per actor, started by [Execute]. This
// reuses the host Go runtime's scheduler instead of hand-rolling a second
// one: generation waits block on channels that a [Source] closes and
// replaces on every increment, which wakes every blocked waiter without any
// bookkeeping of individual wakers. The runtime itself never spawns threads
// beyond this; it is "single-threaded" in the sense that matters for the
// protocol (at most one writer, at-most-one-unread-generation per reader),
// not in the sense of running on a single OS thread.
//
// # Usage
//
//	type pingRequest struct {
//	    Writer actorrt.Writer[Ping]
//	    Reader actorrt.Reader[Pong]
//	}
//
//	spec := actorrt.NewActor("ping", func(req pingRequest, _ struct{}) actorrt.Actor {
//	    return &pingActor{req: req}
//	}, struct{}{})
//
//	err := actorrt.Execute(context.Background(), []actorrt.ActorSpec{spec, pongSpec})
package actorrt
