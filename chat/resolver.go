package chat

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes chat domain operations against the chat backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) ListConversations(ctx context.Context, cc core.CallContext, input ListConversationsInput) core.Envelope[ConversationList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListConversationsInput, ConversationList]{
		Domain:    core.DomainChat,
		Operation: "ListConversations",
		Label:     "list conversations",
		Encode: func(in ListConversationsInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listConversationsRequest{Page: page, Limit: limit}, nil
		},
		Decode: decodeConversationList,
	}, input)
}

func (r *Resolver) ListMessages(ctx context.Context, cc core.CallContext, input ListMessagesInput) core.Envelope[MessageList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListMessagesInput, MessageList]{
		Domain:    core.DomainChat,
		Operation: "ListMessages",
		Label:     "list messages",
		Encode: func(in ListMessagesInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listMessagesRequest{
				ConversationID: in.ConversationID,
				Page:           page,
				Limit:          limit,
			}, nil
		},
		Decode: decodeMessageList,
	}, input)
}

func (r *Resolver) SendMessage(ctx context.Context, cc core.CallContext, input SendMessageInput) core.Envelope[Message] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[SendMessageInput, Message]{
		Domain:    core.DomainChat,
		Operation: "SendMessage",
		Label:     "send message",
		Encode: func(in SendMessageInput) (any, error) {
			return sendMessageRequest{
				ConversationID: in.ConversationID,
				Content:        in.Content,
			}, nil
		},
		Decode: decodeMessage,
	}, input)
}

func (r *Resolver) DeleteConversation(ctx context.Context, cc core.CallContext, input DeleteConversationInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteConversationInput, core.Ack]{
		Domain:    core.DomainChat,
		Operation: "DeleteConversation",
		Label:     "delete conversation",
		Encode: func(in DeleteConversationInput) (any, error) {
			return conversationRequest{ConversationID: in.ConversationID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func decodeConversationList(result core.BackendResult) (core.Envelope[ConversationList], error) {
	wire, err := resolver.DecodeJSON[conversationListResponse](result)
	if err != nil {
		return core.Envelope[ConversationList]{}, err
	}
	list := ConversationList{
		Conversations: make([]Conversation, 0, len(wire.Conversations)),
		Pagination:    wire.Pagination.Meta(),
	}
	for _, conversation := range wire.Conversations {
		list.Conversations = append(list.Conversations, conversation.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}

func decodeMessageList(result core.BackendResult) (core.Envelope[MessageList], error) {
	wire, err := resolver.DecodeJSON[messageListResponse](result)
	if err != nil {
		return core.Envelope[MessageList]{}, err
	}
	list := MessageList{
		Messages:   make([]Message, 0, len(wire.Messages)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, message := range wire.Messages {
		list.Messages = append(list.Messages, message.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}

func decodeMessage(result core.BackendResult) (core.Envelope[Message], error) {
	wire, err := resolver.DecodeJSON[messageResponse](result)
	if err != nil {
		return core.Envelope[Message]{}, err
	}
	if wire.Sent == nil {
		return core.StatusOnly[Message](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Sent.toPublic()), nil
}

func decodeAck(result core.BackendResult) (core.Envelope[core.Ack], error) {
	wire, err := resolver.DecodeJSON[ackResponse](result)
	if err != nil {
		return core.Envelope[core.Ack]{}, err
	}
	return core.StatusOnly[core.Ack](wire.Status, wire.Message), nil
}
