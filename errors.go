package actorrt

import (
	"errors"
	"fmt"
)

// ErrExecuteCanceled is returned by [Execute] when the supplied context was
// canceled and the first actor to finish did so because binding its store
// request failed. An actor whose Run returns after cancellation is reported
// like any other actor error, wrapping whatever Run returned.
var ErrExecuteCanceled = errors.New("actorrt: execution canceled")

// ErrNoActors is returned by [Execute] when called with an empty actor set.
var ErrNoActors = errors.New("actorrt: no actors supplied")

// actorError wraps an error returned by a specific actor's Run method, so
// callers of Execute can tell which actor failed without string-matching.
type actorError struct {
	actor string
	err   error
}

func (e *actorError) Error() string {
	return fmt.Sprintf("actorrt: actor %q: %s", e.actor, e.err)
}

func (e *actorError) Unwrap() error {
	return e.err
}

// ActorName reports the name of the actor that produced err, if err (or
// something it wraps) originated from an actor's Run method.
func ActorName(err error) (string, bool) {
	var ae *actorError
	if errors.As(err, &ae) {
		return ae.actor, true
	}
	return "", false
}

// constructError wraps a failure to bind an actor's store request, e.g. a
// canceled InitializedReader wait during Execute's construction phase.
type constructError struct {
	actor string
	err   error
}

func (e *constructError) Error() string {
	return fmt.Sprintf("actorrt: constructing actor %q: %s", e.actor, e.err)
}

func (e *constructError) Unwrap() error {
	return e.err
}
