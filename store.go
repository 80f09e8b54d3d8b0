package actorrt

import (
	"reflect"
	"sync"
)

// Datastore holds one [slot] per storable type used by an actor set. It is
// constructed once per [Execute] call and never exposed directly to actors;
// actors only ever see the handle types bound from their store requests.
type Datastore struct {
	// readerCounts is the per-type reader count [validateTopology] computed
	// before any actor was constructed. Each slot is seeded with its count
	// on creation, so a slot's writer back-pressure does not depend on the
	// order in which that type's reader handles happen to bind.
	readerCounts map[reflect.Type]int

	mu    sync.Mutex
	slots map[reflect.Type]any
}

func newDatastore(readerCounts map[reflect.Type]int) *Datastore {
	return &Datastore{
		readerCounts: readerCounts,
		slots:        make(map[reflect.Type]any),
	}
}

// getOrCreateSlot returns the slot for T, allocating it on first access.
// Topology validation runs before any handle binds, and already guarantees
// there is exactly one Writer[T] across the whole actor set, so it does not
// matter whether slots are allocated up front or lazily here: by the time
// any handle for T binds, the set of actors that will ever reference T is
// already fixed.
func getOrCreateSlot[T any](ds *Datastore) *slot[T] {
	t := reflect.TypeFor[T]()

	ds.mu.Lock()
	defer ds.mu.Unlock()

	if existing, ok := ds.slots[t]; ok {
		return existing.(*slot[T])
	}
	sl := newSlot[T](ds.readerCounts[t])
	ds.slots[t] = sl
	return sl
}
