package pharaohs

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes pharaoh domain operations against the pharaoh backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetPharaoh(ctx context.Context, cc core.CallContext, input GetPharaohInput) core.Envelope[Pharaoh] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetPharaohInput, Pharaoh]{
		Domain:    core.DomainPharaoh,
		Operation: "GetPharaoh",
		Label:     "fetch pharaoh",
		Encode: func(in GetPharaohInput) (any, error) {
			return getPharaohRequest{
				PharaohID: in.PharaohID,
				Language:  core.NormalizeLanguage(in.Language),
			}, nil
		},
		Decode: decodePharaoh,
	}, input)
}

func (r *Resolver) ListPharaohs(ctx context.Context, cc core.CallContext, input ListPharaohsInput) core.Envelope[PharaohList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListPharaohsInput, PharaohList]{
		Domain:    core.DomainPharaoh,
		Operation: "ListPharaohs",
		Label:     "list pharaohs",
		Encode: func(in ListPharaohsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listPharaohsRequest{
				Page:     page,
				Limit:    limit,
				Language: core.NormalizeLanguage(in.Language),
			}, nil
		},
		Decode: decodePharaohList,
	}, input)
}

func (r *Resolver) SearchPharaohs(ctx context.Context, cc core.CallContext, input SearchPharaohsInput) core.Envelope[PharaohList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[SearchPharaohsInput, PharaohList]{
		Domain:    core.DomainPharaoh,
		Operation: "SearchPharaohs",
		Label:     "search pharaohs",
		Encode: func(in SearchPharaohsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return searchPharaohsRequest{
				Query:    in.Query,
				Page:     page,
				Limit:    limit,
				Language: core.NormalizeLanguage(in.Language),
			}, nil
		},
		Decode: decodePharaohList,
	}, input)
}

func decodePharaoh(result core.BackendResult) (core.Envelope[Pharaoh], error) {
	wire, err := resolver.DecodeJSON[pharaohResponse](result)
	if err != nil {
		return core.Envelope[Pharaoh]{}, err
	}
	if wire.Pharaoh == nil {
		return core.StatusOnly[Pharaoh](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Pharaoh.toPublic()), nil
}

func decodePharaohList(result core.BackendResult) (core.Envelope[PharaohList], error) {
	wire, err := resolver.DecodeJSON[pharaohListResponse](result)
	if err != nil {
		return core.Envelope[PharaohList]{}, err
	}
	list := PharaohList{
		Pharaohs:   make([]Pharaoh, 0, len(wire.Pharaohs)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, pharaoh := range wire.Pharaohs {
		list.Pharaohs = append(list.Pharaohs, pharaoh.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}
