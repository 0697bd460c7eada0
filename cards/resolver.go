package cards

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes card domain operations against the card backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetCard(ctx context.Context, cc core.CallContext, input GetCardInput) core.Envelope[Card] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetCardInput, Card]{
		Domain:    core.DomainCard,
		Operation: "GetCard",
		Label:     "fetch card",
		Encode: func(in GetCardInput) (any, error) {
			return getCardRequest{CardID: in.CardID}, nil
		},
		Decode: decodeCard,
	}, input)
}

func (r *Resolver) ListCards(ctx context.Context, cc core.CallContext, input ListCardsInput) core.Envelope[CardList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListCardsInput, CardList]{
		Domain:    core.DomainCard,
		Operation: "ListCards",
		Label:     "list cards",
		Encode: func(in ListCardsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listCardsRequest{
				Page:     page,
				Limit:    limit,
				Language: core.NormalizeLanguage(in.Language),
			}, nil
		},
		Decode: decodeCardList,
	}, input)
}

func (r *Resolver) CreateCard(ctx context.Context, cc core.CallContext, input CreateCardInput) core.Envelope[Card] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[CreateCardInput, Card]{
		Domain:    core.DomainCard,
		Operation: "CreateCard",
		Label:     "create card",
		Encode: func(in CreateCardInput) (any, error) {
			return createCardRequest{Card: cardFields{
				Title:       in.Title,
				Description: in.Description,
				ImageURL:    in.ImageURL,
				Category:    in.Category,
				Language:    core.NormalizeLanguage(in.Language),
			}}, nil
		},
		Decode: decodeCard,
	}, input)
}

func (r *Resolver) UpdateCard(ctx context.Context, cc core.CallContext, input UpdateCardInput) core.Envelope[Card] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[UpdateCardInput, Card]{
		Domain:    core.DomainCard,
		Operation: "UpdateCard",
		Label:     "update card",
		Encode: func(in UpdateCardInput) (any, error) {
			return updateCardRequest{
				ID: in.CardID,
				cardFields: cardFields{
					Title:       in.Title,
					Description: in.Description,
					ImageURL:    in.ImageURL,
					Category:    in.Category,
					Language:    in.Language,
				},
			}, nil
		},
		Decode: decodeCard,
	}, input)
}

func (r *Resolver) DeleteCard(ctx context.Context, cc core.CallContext, input DeleteCardInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteCardInput, core.Ack]{
		Domain:    core.DomainCard,
		Operation: "DeleteCard",
		Label:     "delete card",
		Encode: func(in DeleteCardInput) (any, error) {
			return getCardRequest{CardID: in.CardID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func decodeCard(result core.BackendResult) (core.Envelope[Card], error) {
	wire, err := resolver.DecodeJSON[cardResponse](result)
	if err != nil {
		return core.Envelope[Card]{}, err
	}
	if wire.Card == nil {
		return core.StatusOnly[Card](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Card.toPublic()), nil
}

func decodeCardList(result core.BackendResult) (core.Envelope[CardList], error) {
	wire, err := resolver.DecodeJSON[cardListResponse](result)
	if err != nil {
		return core.Envelope[CardList]{}, err
	}
	list := CardList{
		Cards:      make([]Card, 0, len(wire.Cards)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, card := range wire.Cards {
		list.Cards = append(list.Cards, card.toPublic())
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
