// Package chat exposes the chat domain operations: conversation listings,
// message history and message sending.
package chat

import "github.com/goliatone/go-gateway/core"

// Conversation is the public conversation shape.
type Conversation struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Message is the public chat message shape.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	Role           string `json:"role"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// ConversationList is the payload for paginated conversation listings.
type ConversationList struct {
	Conversations []Conversation       `json:"conversations"`
	Pagination    *core.PaginationMeta `json:"pagination,omitempty"`
}

// MessageList is the payload for paginated message listings.
type MessageList struct {
	Messages   []Message            `json:"messages"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type ListConversationsInput struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type ListMessagesInput struct {
	ConversationID string `json:"conversationId"`
	Page           int    `json:"page,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

type SendMessageInput struct {
	ConversationID string `json:"conversationId,omitempty"`
	Content        string `json:"content"`
}

type DeleteConversationInput struct {
	ConversationID string `json:"conversationId"`
}

type wireConversation struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	CreatedAt *core.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *core.Timestamp `json:"updated_at,omitempty"`
}

func (w wireConversation) toPublic() Conversation {
	return Conversation{
		ID:        w.ID,
		Title:     w.Title,
		CreatedAt: w.CreatedAt.RFC3339(),
		UpdatedAt: w.UpdatedAt.RFC3339(),
	}
}

type wireMessage struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	CreatedAt      *core.Timestamp `json:"created_at,omitempty"`
}

func (w wireMessage) toPublic() Message {
	return Message{
		ID:             w.ID,
		ConversationID: w.ConversationID,
		Role:           w.Role,
		Content:        w.Content,
		CreatedAt:      w.CreatedAt.RFC3339(),
	}
}

type listConversationsRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type listMessagesRequest struct {
	ConversationID string `json:"conversation_id"`
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id,omitempty"`
	Content        string `json:"content"`
}

type conversationRequest struct {
	ConversationID string `json:"conversation_id"`
}

type conversationListResponse struct {
	core.BackendStatus
	Conversations []wireConversation      `json:"conversations"`
	Pagination    *core.BackendPagination `json:"pagination"`
}

type messageListResponse struct {
	core.BackendStatus
	Messages   []wireMessage           `json:"messages"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type messageResponse struct {
	core.BackendStatus
	Sent *wireMessage `json:"chat_message"`
}

type ackResponse struct {
	core.BackendStatus
}
