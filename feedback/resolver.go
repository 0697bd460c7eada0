package feedback

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes feedback domain operations against the feedback backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) CreateFeedback(ctx context.Context, cc core.CallContext, input CreateFeedbackInput) core.Envelope[Feedback] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[CreateFeedbackInput, Feedback]{
		Domain:    core.DomainFeedback,
		Operation: "CreateFeedback",
		Label:     "create feedback",
		Encode: func(in CreateFeedbackInput) (any, error) {
			return createFeedbackRequest{
				Subject: in.Subject,
				Body:    in.Body,
				Rating:  in.Rating,
			}, nil
		},
		Decode: decodeFeedback,
	}, input)
}

func (r *Resolver) GetFeedback(ctx context.Context, cc core.CallContext, input GetFeedbackInput) core.Envelope[Feedback] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetFeedbackInput, Feedback]{
		Domain:    core.DomainFeedback,
		Operation: "GetFeedback",
		Label:     "fetch feedback",
		Encode: func(in GetFeedbackInput) (any, error) {
			return feedbackRequest{FeedbackID: in.FeedbackID}, nil
		},
		Decode: decodeFeedback,
	}, input)
}

func (r *Resolver) ListFeedback(ctx context.Context, cc core.CallContext, input ListFeedbackInput) core.Envelope[FeedbackList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListFeedbackInput, FeedbackList]{
		Domain:    core.DomainFeedback,
		Operation: "ListFeedback",
		Label:     "list feedback",
		Encode: func(in ListFeedbackInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listFeedbackRequest{Page: page, Limit: limit}, nil
		},
		Decode: decodeFeedbackList,
	}, input)
}

func (r *Resolver) DeleteFeedback(ctx context.Context, cc core.CallContext, input DeleteFeedbackInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteFeedbackInput, core.Ack]{
		Domain:    core.DomainFeedback,
		Operation: "DeleteFeedback",
		Label:     "delete feedback",
		Encode: func(in DeleteFeedbackInput) (any, error) {
			return feedbackRequest{FeedbackID: in.FeedbackID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func decodeFeedback(result core.BackendResult) (core.Envelope[Feedback], error) {
	wire, err := resolver.DecodeJSON[feedbackResponse](result)
	if err != nil {
		return core.Envelope[Feedback]{}, err
	}
	if wire.Feedback == nil {
		return core.StatusOnly[Feedback](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Feedback.toPublic()), nil
}

func decodeFeedbackList(result core.BackendResult) (core.Envelope[FeedbackList], error) {
	wire, err := resolver.DecodeJSON[feedbackListResponse](result)
	if err != nil {
		return core.Envelope[FeedbackList]{}, err
	}
	list := FeedbackList{
		Entries:    make([]Feedback, 0, len(wire.Entries)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, entry := range wire.Entries {
		list.Entries = append(list.Entries, entry.toPublic())
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
