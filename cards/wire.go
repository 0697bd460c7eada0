package cards

import "github.com/goliatone/go-gateway/core"

type wireCard struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Language    string          `json:"language"`
	CreatedAt   *core.Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *core.Timestamp `json:"updated_at,omitempty"`
}

func (w wireCard) toPublic() Card {
	return Card{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		ImageURL:    w.ImageURL,
		Category:    w.Category,
		Language:    w.Language,
		CreatedAt:   w.CreatedAt.RFC3339(),
		UpdatedAt:   w.UpdatedAt.RFC3339(),
	}
}

type getCardRequest struct {
	CardID string `json:"card_id"`
}

type listCardsRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Language string `json:"language"`
}

type cardFields struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
}

// createCardRequest wraps the new card under a single entity field, the shape
// the card backend expects on create.
type createCardRequest struct {
	Card cardFields `json:"card"`
}

// updateCardRequest merges the card id into the flat change set.
type updateCardRequest struct {
	ID string `json:"id"`
	cardFields
}

type cardResponse struct {
	core.BackendStatus
	Card *wireCard `json:"card"`
}

type cardListResponse struct {
	core.BackendStatus
	Cards      []wireCard              `json:"cards"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type ackResponse struct {
	core.BackendStatus
}
