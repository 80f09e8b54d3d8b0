package actorrt

import (
	"context"
	"reflect"
)

// InitializedReader is a [Reader] that is only constructed once the slot
// already holds a value, obtained by calling [Reader.WaitInit]. Most methods
// Reader defines are available unchanged via embedding; Read and ReadCloned
// are overridden below to drop the Option-style nilability those carry on a
// plain Reader, matching the original's read (takes &D, no Option) and
// read_cloned (returns D) on initialized_reader.rs.
type InitializedReader[T any] struct {
	Reader[T]
}

func (InitializedReader[T]) handleKind() handleKind     { return handleKindInitializedReader }
func (InitializedReader[T]) storableType() reflect.Type { return reflect.TypeFor[T]() }
func (InitializedReader[T]) definesSlot() bool          { return false }

// bind performs the full async "request" phase for an InitializedReader: it
// constructs a plain Reader and then blocks (via [Reader.WaitInit]) until the
// slot holds a value, before the actor's synchronous constructor ever runs.
func (InitializedReader[T]) bind(ctx context.Context, ds *Datastore, _ string) (any, error) {
	return newReader[T](ds).WaitInit(ctx)
}

// Read runs f against the slot's value and marks it seen, like
// [Reader.Read], except v is never nil: WaitInit already confirmed the slot
// held a value before this InitializedReader could exist. If the Writer later
// empties the slot with [Modify.Clear], Read panics instead of passing nil.
func (r *InitializedReader[T]) Read(f func(*T)) {
	r.Reader.Read(func(v *T) {
		if v == nil {
			panic("actorrt: InitializedReader observed a nil value")
		}
		f(v)
	})
}

// ReadCloned is [InitializedReader.Read], returning a copy instead of taking
// a callback.
func (r *InitializedReader[T]) ReadCloned() T {
	var out T
	r.Read(func(v *T) {
		out = *v
	})
	return out
}
