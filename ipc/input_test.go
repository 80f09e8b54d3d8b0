package ipc

import (
	"context"
	"testing"

	"github.com/joeycumines/go-longpoll"
	"github.com/stretchr/testify/require"

	"github.com/veecle/actorrt"
)

func TestInputForwardsReceivedValuesToWriter(t *testing.T) {
	// The channel is left open (not closed): after forwarding the single
	// buffered value, the input actor blocks waiting for the next one, so
	// the validator actor below is guaranteed to be the one that finishes
	// first, letting Execute's first-result-wins semantics report its
	// outcome.
	recv := make(chan int, 1)
	recv <- 7

	inputSpec := NewInput("input", recv, &longpoll.ChannelConfig{MinSize: 1, MaxSize: 1})

	type validatorRequest struct {
		Reader actorrt.Reader[int]
	}
	validatorSpec := actorrt.NewActor("validator", func(req validatorRequest, _ struct{}) actorrt.Actor {
		return actorrtFunc(func(ctx context.Context) error {
			return req.Reader.ReadUpdated(ctx, func(v *int) {
				if v == nil || *v != 7 {
					panic("unexpected value forwarded by input actor")
				}
			})
		})
	}, struct{}{})

	err := actorrt.Execute(context.Background(), []actorrt.ActorSpec{inputSpec, validatorSpec})
	require.NoError(t, err)
}

type actorrtFunc func(ctx context.Context) error

func (f actorrtFunc) Run(ctx context.Context) error { return f(ctx) }
