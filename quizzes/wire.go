package quizzes

import (
	"sort"

	"github.com/goliatone/go-gateway/core"
)

// optionsToMap converts the ordered option pairs into the wire map. Later
// duplicates of a key win, matching JSON object semantics.
func optionsToMap(options []Option) map[string]string {
	wire := make(map[string]string, len(options))
	for _, option := range options {
		wire[option.Key] = option.Value
	}
	return wire
}

// optionsFromMap reconstructs the ordered pairs from the wire map. The map
// carries no order, so the output is sorted by key ascending.
func optionsFromMap(wire map[string]string) []Option {
	options := make([]Option, 0, len(wire))
	for key, value := range wire {
		options = append(options, Option{Key: key, Value: value})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Key < options[j].Key
	})
	return options
}

type wireQuiz struct {
	ID        string            `json:"id"`
	Question  string            `json:"question"`
	Options   map[string]string `json:"options"`
	Language  string            `json:"language"`
	CreatedAt *core.Timestamp   `json:"created_at,omitempty"`
	UpdatedAt *core.Timestamp   `json:"updated_at,omitempty"`
}

func (w wireQuiz) toPublic() Quiz {
	return Quiz{
		ID:        w.ID,
		Question:  w.Question,
		Options:   optionsFromMap(w.Options),
		Language:  w.Language,
		CreatedAt: w.CreatedAt.RFC3339(),
		UpdatedAt: w.UpdatedAt.RFC3339(),
	}
}

type getQuizRequest struct {
	QuizID string `json:"quiz_id"`
}

type listQuizzesRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Language string `json:"language"`
}

type createQuizRequest struct {
	Question   string            `json:"question"`
	Options    map[string]string `json:"options"`
	CorrectKey string            `json:"correct_key"`
	Language   string            `json:"language"`
}

type updateQuizRequest struct {
	ID         string            `json:"id"`
	Question   string            `json:"question,omitempty"`
	Options    map[string]string `json:"options,omitempty"`
	CorrectKey string            `json:"correct_key,omitempty"`
}

type submitAnswerRequest struct {
	QuizID string `json:"quiz_id"`
	Key    string `json:"key"`
}

type quizResponse struct {
	core.BackendStatus
	Quiz *wireQuiz `json:"quiz"`
}

type quizListResponse struct {
	core.BackendStatus
	Quizzes    []wireQuiz              `json:"quizzes"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type answerResponse struct {
	core.BackendStatus
	QuizID     string `json:"quiz_id"`
	Correct    bool   `json:"correct"`
	CorrectKey string `json:"correct_key"`
}

type ackResponse struct {
	core.BackendStatus
}
