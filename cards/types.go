// Package cards exposes the card domain operations. Create payloads are
// wrapped under a single "card" entity field; updates merge the card id into
// the change set.
package cards

import "github.com/goliatone/go-gateway/core"

// Card is the public card shape.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CardList is the payload for paginated card listings.
type CardList struct {
	Cards      []Card               `json:"cards"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetCardInput struct {
	CardID string `json:"cardId"`
}

type ListCardsInput struct {
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`
}

type CreateCardInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
}

type UpdateCardInput struct {
	CardID      string `json:"cardId"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
}

type DeleteCardInput struct {
	CardID string `json:"cardId"`
}
