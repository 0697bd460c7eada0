package progress

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes user progress domain operations against the user
// progress backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetProgress(ctx context.Context, cc core.CallContext, input GetProgressInput) core.Envelope[Progress] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetProgressInput, Progress]{
		Domain:    core.DomainProgress,
		Operation: "GetProgress",
		Label:     "fetch progress",
		Encode: func(in GetProgressInput) (any, error) {
			return getProgressRequest{UserID: in.UserID, ItemID: in.ItemID}, nil
		},
		Decode: decodeProgress,
	}, input)
}

func (r *Resolver) UpdateProgress(ctx context.Context, cc core.CallContext, input UpdateProgressInput) core.Envelope[Progress] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[UpdateProgressInput, Progress]{
		Domain:    core.DomainProgress,
		Operation: "UpdateProgress",
		Label:     "update progress",
		Encode: func(in UpdateProgressInput) (any, error) {
			return updateProgressRequest{
				UserID:    in.UserID,
				ItemID:    in.ItemID,
				Completed: in.Completed,
				Score:     in.Score,
			}, nil
		},
		Decode: decodeProgress,
	}, input)
}

func (r *Resolver) ListProgress(ctx context.Context, cc core.CallContext, input ListProgressInput) core.Envelope[ProgressList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListProgressInput, ProgressList]{
		Domain:    core.DomainProgress,
		Operation: "ListProgress",
		Label:     "list progress",
		Encode: func(in ListProgressInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listProgressRequest{UserID: in.UserID, Page: page, Limit: limit}, nil
		},
		Decode: decodeProgressList,
	}, input)
}

func decodeProgress(result core.BackendResult) (core.Envelope[Progress], error) {
	wire, err := resolver.DecodeJSON[progressResponse](result)
	if err != nil {
		return core.Envelope[Progress]{}, err
	}
	if wire.Progress == nil {
		return core.StatusOnly[Progress](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Progress.toPublic()), nil
}

func decodeProgressList(result core.BackendResult) (core.Envelope[ProgressList], error) {
	wire, err := resolver.DecodeJSON[progressListResponse](result)
	if err != nil {
		return core.Envelope[ProgressList]{}, err
	}
	list := ProgressList{
		Entries:    make([]Progress, 0, len(wire.Entries)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, entry := range wire.Entries {
		list.Entries = append(list.Entries, entry.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}
