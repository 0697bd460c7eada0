package templates

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes history template domain operations against the history
// template backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetTemplate(ctx context.Context, cc core.CallContext, input GetTemplateInput) core.Envelope[Template] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetTemplateInput, Template]{
		Domain:    core.DomainTemplate,
		Operation: "GetTemplate",
		Label:     "fetch template",
		Encode: func(in GetTemplateInput) (any, error) {
			return getTemplateRequest{TemplateID: in.TemplateID}, nil
		},
		Decode: decodeTemplate,
	}, input)
}

func (r *Resolver) ListTemplates(ctx context.Context, cc core.CallContext, input ListTemplatesInput) core.Envelope[TemplateList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListTemplatesInput, TemplateList]{
		Domain:    core.DomainTemplate,
		Operation: "ListTemplates",
		Label:     "list templates",
		Encode: func(in ListTemplatesInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listTemplatesRequest{
				Page:     page,
				Limit:    limit,
				Category: in.Category,
			}, nil
		},
		Decode: decodeTemplateList,
	}, input)
}

func (r *Resolver) CreateTemplate(ctx context.Context, cc core.CallContext, input CreateTemplateInput) core.Envelope[Template] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[CreateTemplateInput, Template]{
		Domain:    core.DomainTemplate,
		Operation: "CreateTemplate",
		Label:     "create template",
		Encode: func(in CreateTemplateInput) (any, error) {
			return createTemplateRequest{
				Name:     in.Name,
				Content:  in.Content,
				Category: in.Category,
			}, nil
		},
		Decode: decodeTemplate,
	}, input)
}

func (r *Resolver) UpdateTemplate(ctx context.Context, cc core.CallContext, input UpdateTemplateInput) core.Envelope[Template] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[UpdateTemplateInput, Template]{
		Domain:    core.DomainTemplate,
		Operation: "UpdateTemplate",
		Label:     "update template",
		Encode: func(in UpdateTemplateInput) (any, error) {
			return updateTemplateRequest{
				ID:       in.TemplateID,
				Name:     in.Name,
				Content:  in.Content,
				Category: in.Category,
			}, nil
		},
		Decode: decodeTemplate,
	}, input)
}

func (r *Resolver) DeleteTemplate(ctx context.Context, cc core.CallContext, input DeleteTemplateInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteTemplateInput, core.Ack]{
		Domain:    core.DomainTemplate,
		Operation: "DeleteTemplate",
		Label:     "delete template",
		Encode: func(in DeleteTemplateInput) (any, error) {
			return getTemplateRequest{TemplateID: in.TemplateID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func decodeTemplate(result core.BackendResult) (core.Envelope[Template], error) {
	wire, err := resolver.DecodeJSON[templateResponse](result)
	if err != nil {
		return core.Envelope[Template]{}, err
	}
	if wire.Template == nil {
		return core.StatusOnly[Template](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Template.toPublic()), nil
}

func decodeTemplateList(result core.BackendResult) (core.Envelope[TemplateList], error) {
	wire, err := resolver.DecodeJSON[templateListResponse](result)
	if err != nil {
		return core.Envelope[TemplateList]{}, err
	}
	list := TemplateList{
		Templates:  make([]Template, 0, len(wire.Templates)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, template := range wire.Templates {
		list.Templates = append(list.Templates, template.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}

func decodeAck(result core.BackendResult) (core.Envelope[core.Ack], error) {
	wire, err := resolver.DecodeJSON[ackResponse](result)
	if err != nil {
		return core.Envelope[core.Ack]{}, err
	}
	return core.StatusOnly[core.Ack](wire.Status, wire.Message), nil
}
