package actorrt

import (
	"context"
	"reflect"
)

// ExclusiveReader is a [Reader] that may additionally remove the slot's
// current value via [ExclusiveReader.Take]. A storable type may have at most
// one ExclusiveReader across an actor set, and if it has one, it must be the
// type's only reader of any kind: topology validation enforces both rules
// before any actor is constructed.
type ExclusiveReader[T any] struct {
	Reader[T]
}

func (ExclusiveReader[T]) handleKind() handleKind     { return handleKindExclusiveReader }
func (ExclusiveReader[T]) storableType() reflect.Type { return reflect.TypeFor[T]() }
func (ExclusiveReader[T]) definesSlot() bool          { return false }

func (ExclusiveReader[T]) bind(_ context.Context, ds *Datastore, _ string) (any, error) {
	return ExclusiveReader[T]{Reader: newReader[T](ds)}, nil
}

// Take removes and returns the slot's current value, marking it seen and
// leaving the slot empty for subsequent reads until the next write.
func (r *ExclusiveReader[T]) Take() *T {
	r.markSeen()
	v, _ := r.slot.take()
	return v
}
