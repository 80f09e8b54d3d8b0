package ipc

import (
	"context"
	"errors"
	"io"

	"github.com/joeycumines/go-longpoll"

	"github.com/veecle/actorrt"
)

type inputRequest[T any] struct {
	Writer actorrt.Writer[T]
}

type inputActor[T any] struct {
	req  inputRequest[T]
	recv <-chan T
	cfg  *longpoll.ChannelConfig
}

func (a *inputActor[T]) Run(ctx context.Context) error {
	for {
		err := longpoll.Channel(ctx, a.cfg, a.recv, func(value T) error {
			return a.req.Writer.Write(ctx, value)
		})
		if errors.Is(err, io.EOF) {
			// The upstream channel closed; there is nothing further to
			// input, so this actor is done without it being a failure.
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// NewInput registers an actor named name that drains recv, batched via
// go-longpoll, translating each received value into a
// [actorrt.Writer.Write] call. cfg is optional; passing nil uses
// go-longpoll's documented defaults.
func NewInput[T any](name string, recv <-chan T, cfg *longpoll.ChannelConfig) actorrt.ActorSpec {
	return actorrt.NewActor(name, func(req inputRequest[T], _ struct{}) actorrt.Actor {
		return &inputActor[T]{req: req, recv: recv, cfg: cfg}
	}, struct{}{})
}
