package actorrt

import (
	"context"
	"reflect"

	"github.com/veecle/actorrt/telemetry"
)

// Reader observes values of type T published by a [Writer]. Any number of
// non-exclusive Readers may coexist for the same storable type.
type Reader[T any] struct {
	slot   *slot[T]
	waiter *Waiter

	// ackedGen is the slot value generation this Reader last acknowledged,
	// via either markSeen or a resolved WaitForUpdate, so a slot shared by
	// several readers can tell them apart and count each one's
	// acknowledgement exactly once per generation. See [slot.ackSeen].
	ackedGen uint64
}

func (Reader[T]) handleKind() handleKind     { return handleKindReader }
func (Reader[T]) storableType() reflect.Type { return reflect.TypeFor[T]() }
func (Reader[T]) definesSlot() bool          { return false }

// newReader binds a Reader whose waiter starts at generation 0, so a Reader
// bound after its slot was already written still observes that value as
// unread, exactly like one bound before the write.
func newReader[T any](ds *Datastore) Reader[T] {
	sl := getOrCreateSlot[T](ds)
	return Reader[T]{slot: sl, waiter: &Waiter{source: sl.source}}
}

func (Reader[T]) bind(_ context.Context, ds *Datastore, _ string) (any, error) {
	return newReader[T](ds), nil
}

// markSeen records that this Reader observed the slot's current value, both
// for [Reader.IsUpdated] and, via [slot.ackSeen], towards unblocking the
// slot's Writer. See [Writer.Ready]'s doc comment for the full per-slot
// back-pressure this feeds into.
func (r *Reader[T]) markSeen() {
	r.waiter.UpdateGeneration()
	r.slot.ackSeen(&r.ackedGen)
}

// IsUpdated reports whether the slot has advanced since this Reader last
// marked it seen, without blocking.
func (r *Reader[T]) IsUpdated() bool {
	return r.waiter.IsUpdated()
}

// Read runs f against the slot's current value (nil if the slot has never
// been written) and marks it seen.
func (r *Reader[T]) Read(f func(*T)) {
	r.markSeen()
	r.slot.read(f)
}

// ReadCloned is [Reader.Read], returning a copy instead of taking a callback.
func (r *Reader[T]) ReadCloned() *T {
	var out *T
	r.Read(func(v *T) {
		if v != nil {
			cp := *v
			out = &cp
		}
	})
	return out
}

// WaitForUpdate blocks until the slot advances past this Reader's last-seen
// generation. It does not mark the value seen in the [Reader.IsUpdated]
// sense — a subsequent [Reader.Read] still observes it as unread — but it
// does count as this Reader's chance to react to the current generation, the
// same as an actual read would, acknowledging it towards unblocking the
// slot's Writer (see [slot.ackSeen]): a Reader that only ever polls via
// WaitForUpdate without consuming the value still must not stall its slot's
// back-pressure forever. A missed update is reported to telemetry
// (rate-limited) and treated as a successful return, since the caller only
// needs to know an update occurred, not how many were skipped.
func (r *Reader[T]) WaitForUpdate(ctx context.Context) error {
	gap, err := r.waiter.Wait(ctx)
	if err != nil {
		return err
	}
	r.slot.ackSeen(&r.ackedGen)
	if gap > 1 {
		telemetry.WarnMissedUpdate(ctx, r.slot.typeName(), gap)
	}
	return nil
}

// ReadUpdated waits for an update, then reads and marks it seen, linking the
// caller's active telemetry span back to the write that produced the value.
func (r *Reader[T]) ReadUpdated(ctx context.Context, f func(*T)) error {
	if err := r.WaitForUpdate(ctx); err != nil {
		return err
	}
	r.markSeen()
	span := r.slot.read(f)
	telemetry.Link(ctx, span)
	return nil
}

// ReadUpdatedCloned is [Reader.ReadUpdated], returning a copy.
func (r *Reader[T]) ReadUpdatedCloned(ctx context.Context) (*T, error) {
	var out *T
	err := r.ReadUpdated(ctx, func(v *T) {
		if v != nil {
			cp := *v
			out = &cp
		}
	})
	return out, err
}

// WaitInit blocks until the slot holds a value for the first time, without
// marking it seen, so the caller's first [InitializedReader] read still
// observes that first value as unread. Consumes the Reader.
func (r Reader[T]) WaitInit(ctx context.Context) (InitializedReader[T], error) {
	for !r.slot.hasValue() {
		if _, err := r.waiter.Wait(ctx); err != nil {
			return InitializedReader[T]{}, err
		}
	}
	return InitializedReader[T]{Reader: r}, nil
}
