package actorrt

import (
	"context"
	"reflect"

	"github.com/veecle/actorrt/telemetry"
)

// Writer publishes values of type T. Exactly one Writer[T] may exist across
// an actor set's combined store requests; Execute's topology validation
// enforces this before any actor is constructed.
//
// Writer.Ready waits against its slot's own ack generation, armed to the
// slot's reader count (fixed by topology validation, see [Datastore]) on
// every write and counted down one reader at a time by [Reader.markSeen] and
// friends: the original system's scheduler guarantees every reader gets a
// chance to observe a value before the next scheduling round lets its Writer
// overwrite it (datastore/mod.rs's Datastore::source doc). A
// goroutine-per-actor runtime has no discrete round to borrow that guarantee
// from, so it is reconstructed directly, per slot: this Writer's next
// publish is only allowed once every reader bound to this specific slot —
// not some other slot's reader making unrelated progress — has acknowledged
// the one currently in flight. A freshly bound Writer is always ready for
// its first publish, since nothing has been written yet for any reader to
// be behind on. See DESIGN.md for the full grounding of this translation.
type Writer[T any] struct {
	slot   *slot[T]
	waiter *Waiter
}

func (Writer[T]) handleKind() handleKind     { return handleKindWriter }
func (Writer[T]) storableType() reflect.Type { return reflect.TypeFor[T]() }
func (Writer[T]) definesSlot() bool          { return true }

func (Writer[T]) bind(_ context.Context, ds *Datastore, _ string) (any, error) {
	sl := getOrCreateSlot[T](ds)
	sl.takeWriter()
	return Writer[T]{slot: sl, waiter: sl.ack.NewReadyWaiter()}, nil
}

// Ready blocks until the next [Writer.Write] or [Writer.Modify] call is
// guaranteed to resolve without blocking.
func (w *Writer[T]) Ready(ctx context.Context) error {
	_, err := w.waiter.Wait(ctx)
	return err
}

// Write replaces the slot's value and wakes any Reader blocked on it.
func (w *Writer[T]) Write(ctx context.Context, value T) error {
	return w.Modify(ctx, func(m Modify[T]) {
		m.Insert(value)
	})
}

// Modify runs f against the slot's current value. Readers are only woken,
// and the next Ready/Write/Modify call only blocks, if f reached for mutable
// access ([Modify.AsMut], [Modify.Insert], or [Modify.Clear]); a read-only f
// that only calls [Modify.Peek] leaves the slot's generation untouched, so
// the following write is not delayed by it.
func (w *Writer[T]) Modify(ctx context.Context, f func(Modify[T])) error {
	ctx, span := telemetry.NewSpan(ctx, "modify")
	defer span.End()

	if err := w.Ready(ctx); err != nil {
		return err
	}

	modified := w.slot.modify(span.ID(), f)
	if modified {
		telemetry.Event(ctx, "slot modified", telemetry.String("type", w.slot.typeName()))
		w.waiter.UpdateGeneration()
		w.slot.incrementGeneration()
	}
	return nil
}
