package actorrt

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/veecle/actorrt/telemetry"
)

// slot holds the single current value of one storable type T, plus the
// bookkeeping needed to enforce the single-writer protocol: its own value
// generation [Source] that readers wait on, a second ack [Source] that the
// slot's Writer waits on, whether a Writer has already been bound, and the
// span of the write that produced the current value, so a subsequent read
// can link back to it instead of re-parenting it.
//
// readerCount and pendingAcks implement the "every reader gets a chance to
// read a value before a Writer may overwrite it" guarantee
// (datastore/mod.rs's Datastore::source doc) per slot, rather than
// datastore-wide: readerCount is fixed once, from topology validation,
// before any actor runs; each write arms pendingAcks to readerCount, and
// every bound reader's [slot.ackSeen] call counts down towards zero —
// triggered by [Reader.WaitForUpdate] resolving as much as by an actual
// read, since either one is this reader's chance to react to the value. The
// Writer's ack Source only advances once pendingAcks reaches zero, so its
// next Ready call only unblocks after every reader of this specific slot —
// not some other slot's reader — has acknowledged the current value.
type slot[T any] struct {
	mu          sync.Mutex
	value       *T
	source      *Source
	ack         *Source
	writerTaken bool
	writerSpan  telemetry.SpanID

	readerCount int
	pendingAcks int
}

func newSlot[T any](readerCount int) *slot[T] {
	return &slot[T]{source: NewSource(), ack: NewSource(), readerCount: readerCount}
}

func (s *slot[T]) typeName() string {
	return reflect.TypeFor[T]().String()
}

// takeWriter claims the sole Writer for this slot, panicking if one was
// already taken. Topology validation already guarantees at most one Writer
// field exists per storable type across the whole actor set, so this only
// fires if that invariant is ever violated by a bug elsewhere.
func (s *slot[T]) takeWriter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writerTaken {
		panic(fmt.Sprintf("actorrt: attempted to acquire the writer for slot<%s> multiple times", s.typeName()))
	}
	s.writerTaken = true
}

// modify runs f against the slot's current value, wrapped in a [Modify], and
// reports whether f reached for mutable access. For a modifying call,
// writeSpan becomes the slot's writerSpan, so the next read links to it.
func (s *slot[T]) modify(writeSpan telemetry.SpanID, f func(Modify[T])) (modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(newModify(&s.value, &modified))
	if modified {
		s.writerSpan = writeSpan
	}
	return modified
}

// incrementGeneration advances the slot's value generation, waking any
// Reader blocked on it, and arms the ack gate: the slot's Writer does not
// become ready again until every one of this slot's readerCount readers has
// called [slot.ackSeen] for this generation. A slot whose readerCount is zero
// (only possible outside topology-validated Execute, e.g. in tests that build
// a Datastore without reader counts) has nothing to wait for, so it stays
// ready.
func (s *slot[T]) incrementGeneration() {
	s.mu.Lock()
	s.pendingAcks = s.readerCount
	ready := s.pendingAcks <= 0
	s.mu.Unlock()

	s.source.IncrementGeneration()
	if ready {
		s.ack.IncrementGeneration()
	}
}

// ackSeen records that a reader carrying lastAcked has observed this slot's
// current value generation, counted towards unblocking the slot's Writer.
// lastAcked is local to one reader handle (e.g. [Reader.ackedGen]); comparing
// against it before decrementing means a reader calling this any number of
// times against the same generation — WaitForUpdate followed by Read, say —
// only counts once.
func (s *slot[T]) ackSeen(lastAcked *uint64) {
	cur := s.source.Generation()

	s.mu.Lock()
	if *lastAcked == cur {
		s.mu.Unlock()
		return
	}
	*lastAcked = cur
	s.pendingAcks--
	ready := s.pendingAcks <= 0
	s.mu.Unlock()

	if ready {
		s.ack.IncrementGeneration()
	}
}

// read runs f against the slot's current value (nil if never written) and
// reports the span of the write that produced it, if any, so the caller can
// link to it.
func (s *slot[T]) read(f func(*T)) telemetry.SpanID {
	s.mu.Lock()
	v := s.value
	span := s.writerSpan
	s.mu.Unlock()
	f(v)
	return span
}

// take removes and returns the slot's current value, for [ExclusiveReader.Take].
func (s *slot[T]) take() (*T, telemetry.SpanID) {
	s.mu.Lock()
	v := s.value
	span := s.writerSpan
	s.value = nil
	s.mu.Unlock()
	return v, span
}

func (s *slot[T]) hasValue() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value != nil
}
