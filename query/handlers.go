package query

import (
	"context"

	"github.com/goliatone/go-gateway/core"
)

// ResolveFunc is the shape shared by every domain resolver method.
type ResolveFunc[I any, O any] func(ctx context.Context, cc core.CallContext, input I) core.Envelope[O]

// ResolveQuery runs one gateway read and returns the response envelope.
type ResolveQuery[I any, O any] struct {
	resolve ResolveFunc[I, O]
}

func NewResolveQuery[I any, O any](resolve ResolveFunc[I, O]) *ResolveQuery[I, O] {
	return &ResolveQuery[I, O]{resolve: resolve}
}

func (q *ResolveQuery[I, O]) Query(ctx context.Context, msg Message[I]) (core.Envelope[O], error) {
	if q == nil || q.resolve == nil {
		return core.Envelope[O]{}, queryDependencyError("query: resolve func is required")
	}
	cc := core.NewCallContext(msg.Headers)
	return q.resolve(ctx, cc, msg.Input), nil
}
