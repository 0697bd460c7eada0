// Package feedback exposes the feedback domain operations.
package feedback

import "github.com/goliatone/go-gateway/core"

// Feedback is the public feedback entry shape.
type Feedback struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// FeedbackList is the payload for paginated feedback listings.
type FeedbackList struct {
	Entries    []Feedback           `json:"entries"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type CreateFeedbackInput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Rating  int    `json:"rating,omitempty"`
}

type GetFeedbackInput struct {
	FeedbackID string `json:"feedbackId"`
}

type ListFeedbackInput struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type DeleteFeedbackInput struct {
	FeedbackID string `json:"feedbackId"`
}

type wireFeedback struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body"`
	Rating    int             `json:"rating"`
	CreatedAt *core.Timestamp `json:"created_at,omitempty"`
}

func (w wireFeedback) toPublic() Feedback {
	return Feedback{
		ID:        w.ID,
		UserID:    w.UserID,
		Subject:   w.Subject,
		Body:      w.Body,
		Rating:    w.Rating,
		CreatedAt: w.CreatedAt.RFC3339(),
	}
}

type createFeedbackRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Rating  int    `json:"rating,omitempty"`
}

type feedbackRequest struct {
	FeedbackID string `json:"feedback_id"`
}

type listFeedbackRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type feedbackResponse struct {
	core.BackendStatus
	Feedback *wireFeedback `json:"feedback"`
}

type feedbackListResponse struct {
	core.BackendStatus
	Entries    []wireFeedback          `json:"entries"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type ackResponse struct {
	core.BackendStatus
}
