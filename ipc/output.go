// Package ipc supplements the core runtime with two ordinary actors that
// bridge a storable type to an external Go channel: [NewInput] drains
// received messages into a [actorrt.Writer], [NewOutput] forwards updates
// from an [actorrt.InitializedReader] out to a channel. Neither adds a new
// runtime primitive; they are regular actors built entirely on the public
// handle API, grounded on original_source/veecle-ipc/src/actors/{input,output}.rs.
package ipc

import (
	"context"
	"fmt"

	"github.com/veecle/actorrt"
	"github.com/veecle/actorrt/telemetry"
)

// SendPolicy controls what [NewOutput] does when the outbound channel is
// full, mirroring original_source/veecle-ipc's SendPolicy enum.
type SendPolicy int

const (
	// SendPolicyPanic panics immediately if the outbound channel is full,
	// making buffer exhaustion visible during testing. This is the default.
	SendPolicyPanic SendPolicy = iota
	// SendPolicyDrop drops the message and reports a throttled telemetry
	// warning instead of blocking or panicking. Intended for non-critical
	// data such as telemetry mirrored back out over IPC.
	SendPolicyDrop
)

type outputRequest[T any] struct {
	Reader actorrt.InitializedReader[T]
}

type outputActor[T any] struct {
	req    outputRequest[T]
	name   string
	send   chan<- T
	policy SendPolicy
}

func (a *outputActor[T]) Run(ctx context.Context) error {
	for {
		var value T
		if err := a.req.Reader.WaitForUpdate(ctx); err != nil {
			return err
		}
		a.req.Reader.Read(func(v *T) {
			if v != nil {
				value = *v
			}
		})

		if err := ctx.Err(); err != nil {
			return err
		}

		switch a.policy {
		case SendPolicyDrop:
			select {
			case a.send <- value:
			default:
				telemetry.WarnDropped(ctx, a.name)
			}
		default:
			select {
			case a.send <- value:
			default:
				panic(fmt.Sprintf("actorrt/ipc: output channel %q is full", a.name))
			}
		}
	}
}

// NewOutput registers an actor named name that forwards every update of T to
// send, using policy to decide what happens when send is full.
func NewOutput[T any](name string, send chan<- T, policy SendPolicy) actorrt.ActorSpec {
	return actorrt.NewActor(name, func(req outputRequest[T], _ struct{}) actorrt.Actor {
		return &outputActor[T]{req: req, name: name, send: send, policy: policy}
	}, struct{}{})
}
