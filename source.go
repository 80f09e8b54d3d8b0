package actorrt

import (
	"context"
	"sync"
)

// Source is a monotonically increasing generation counter shared by a group
// of [Waiter]s. Every slot holds two: a value Source its readers wait on, and
// an ack Source its Writer waits on. There is no datastore-wide Source.
// Incrementing a Source wakes every [Waiter] currently blocked in [Waiter.Wait]
// on it, without the waiters having registered themselves individually: a
// blocked Wait holds a reference to the channel open at the time it started
// waiting, and IncrementGeneration closes that channel, so every Wait call in
// flight observes the close and re-checks the generation.
type Source struct {
	mu         sync.Mutex
	generation uint64
	notify     chan struct{}
}

// NewSource returns a Source at generation 0.
func NewSource() *Source {
	return &Source{notify: make(chan struct{})}
}

// Generation reports the current generation.
func (s *Source) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// IncrementGeneration advances the generation by one and wakes every Waiter
// currently blocked on this Source.
func (s *Source) IncrementGeneration() {
	s.mu.Lock()
	s.generation++
	old := s.notify
	s.notify = make(chan struct{})
	s.mu.Unlock()
	close(old)
}

func (s *Source) snapshot() (uint64, chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation, s.notify
}

// NewWaiter returns a Waiter that considers the Source's current generation
// already seen.
func (s *Source) NewWaiter() *Waiter {
	gen, _ := s.snapshot()
	return &Waiter{source: s, generation: gen}
}

// NewReadyWaiter returns a Waiter that is already updated: its first Wait
// returns immediately, reporting a gap of one, without requiring any
// IncrementGeneration call first. A [Writer] binds one of these instead of a
// plain Waiter: its very first publish has nothing to wait for, since no
// round has had a chance to elapse yet. The underlying arithmetic relies on
// uint64 wraparound (gen - 1 at gen == 0), which is well-defined in Go.
func (s *Source) NewReadyWaiter() *Waiter {
	gen, _ := s.snapshot()
	return &Waiter{source: s, generation: gen - 1}
}

// Waiter tracks one observer's last-seen generation of a [Source]. It is not
// safe for concurrent use by multiple goroutines: each handle (Writer,
// Reader, ExclusiveReader) owns exactly one Waiter, matching the
// single-writer, sequential-per-actor access pattern the runtime guarantees.
type Waiter struct {
	source     *Source
	generation uint64
}

// UpdateGeneration marks the Source's current generation as seen, without
// blocking.
func (w *Waiter) UpdateGeneration() {
	w.generation = w.source.Generation()
}

// IsUpdated reports whether the Source has advanced past this Waiter's
// last-seen generation.
func (w *Waiter) IsUpdated() bool {
	return w.source.Generation() != w.generation
}

// Wait blocks until the Source's generation differs from the last one this
// Waiter observed, then reports how many generations it advanced by: 1 means no
// update was missed, greater than 1 means the waiter was asleep for at least
// one intervening increment it never observed directly (a "missed update").
// Wait never updates the Waiter's last-seen generation itself; callers that
// want to consume the update call [Waiter.UpdateGeneration] afterwards.
func (w *Waiter) Wait(ctx context.Context) (gap uint64, err error) {
	for {
		current, notify := w.source.snapshot()
		if current == w.generation {
			select {
			case <-notify:
				continue
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}
		return current - w.generation, nil
	}
}
