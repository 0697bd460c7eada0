// Package progress exposes the user progress domain operations.
package progress

import "github.com/goliatone/go-gateway/core"

// Progress is one user's progress against one content item.
type Progress struct {
	UserID    string `json:"userId"`
	ItemID    string `json:"itemId"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ProgressList is the payload for paginated progress listings.
type ProgressList struct {
	Entries    []Progress           `json:"entries"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetProgressInput struct {
	UserID string `json:"userId"`
	ItemID string `json:"itemId"`
}

type UpdateProgressInput struct {
	UserID    string `json:"userId"`
	ItemID    string `json:"itemId"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score,omitempty"`
}

type ListProgressInput struct {
	UserID string `json:"userId"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type wireProgress struct {
	UserID    string          `json:"user_id"`
	ItemID    string          `json:"item_id"`
	Completed bool            `json:"completed"`
	Score     int             `json:"score"`
	UpdatedAt *core.Timestamp `json:"updated_at,omitempty"`
}

func (w wireProgress) toPublic() Progress {
	return Progress{
		UserID:    w.UserID,
		ItemID:    w.ItemID,
		Completed: w.Completed,
		Score:     w.Score,
		UpdatedAt: w.UpdatedAt.RFC3339(),
	}
}

type getProgressRequest struct {
	UserID string `json:"user_id"`
	ItemID string `json:"item_id"`
}

type updateProgressRequest struct {
	UserID    string `json:"user_id"`
	ItemID    string `json:"item_id"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score,omitempty"`
}

type listProgressRequest struct {
	UserID string `json:"user_id"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type progressResponse struct {
	core.BackendStatus
	Progress *wireProgress `json:"progress"`
}

type progressListResponse struct {
	core.BackendStatus
	Entries    []wireProgress          `json:"entries"`
	Pagination *core.BackendPagination `json:"pagination"`
}
