// Package quizzes exposes the quiz domain operations. Quiz options cross the
// wire as a key→value map; the public surface keeps them as an ordered list
// of key/value pairs, reconstructed sorted by key on the way out.
package quizzes

import "github.com/goliatone/go-gateway/core"

// Option is one answer choice, keyed like "A", "B".
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Quiz is the public quiz shape.
type Quiz struct {
	ID        string   `json:"id"`
	Question  string   `json:"question"`
	Options   []Option `json:"options"`
	Language  string   `json:"language"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// QuizList is the payload for paginated quiz listings.
type QuizList struct {
	Quizzes    []Quiz               `json:"quizzes"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

// AnswerResult is the payload for a submitted answer.
type AnswerResult struct {
	QuizID     string `json:"quizId"`
	Correct    bool   `json:"correct"`
	CorrectKey string `json:"correctKey,omitempty"`
}

type GetQuizInput struct {
	QuizID string `json:"quizId"`
}

type ListQuizzesInput struct {
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`
}

type CreateQuizInput struct {
	Question   string   `json:"question"`
	Options    []Option `json:"options"`
	CorrectKey string   `json:"correctKey"`
	Language   string   `json:"language,omitempty"`
}

type UpdateQuizInput struct {
	QuizID     string   `json:"quizId"`
	Question   string   `json:"question,omitempty"`
	Options    []Option `json:"options,omitempty"`
	CorrectKey string   `json:"correctKey,omitempty"`
}

type DeleteQuizInput struct {
	QuizID string `json:"quizId"`
}

type SubmitAnswerInput struct {
	QuizID string `json:"quizId"`
	Key    string `json:"key"`
}
