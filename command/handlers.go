package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-gateway/core"
)

// ResolveFunc is the shape shared by every domain resolver method.
type ResolveFunc[I any, O any] func(ctx context.Context, cc core.CallContext, input I) core.Envelope[O]

// ResolveCommand runs one gateway mutation and stores the response envelope
// on the bus result collector.
type ResolveCommand[I any, O any] struct {
	resolve ResolveFunc[I, O]
}

func NewResolveCommand[I any, O any](resolve ResolveFunc[I, O]) *ResolveCommand[I, O] {
	return &ResolveCommand[I, O]{resolve: resolve}
}

func (c *ResolveCommand[I, O]) Execute(ctx context.Context, msg Message[I]) error {
	if c == nil || c.resolve == nil {
		return commandDependencyError("command: resolve func is required")
	}
	cc := core.NewCallContext(msg.Headers)
	envelope := c.resolve(ctx, cc, msg.Input)
	storeResult(ctx, envelope)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
