package core

import (
	"net/http"
	"time"
)

// Envelope is the single response shape returned to every public caller,
// regardless of which backend produced the outcome. StatusCode and Message
// are always populated; at most one of Payload/Error is set.
type Envelope[T any] struct {
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message"`
	Payload    *T           `json:"payload,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail never echoes backend exception text or stack frames; it is
// constructed fresh per failure.
type ErrorDetail struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Details   []string `json:"details"`
	Timestamp string   `json:"timestamp"`
}

// PaginationMeta is the flat pagination shape attached to list payloads.
// TotalCount alone is populated for cursor-less lists.
type PaginationMeta struct {
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
}

// Ack is the payload type for operations whose backend response carries
// nothing beyond status and message, such as deletes and logouts.
type Ack struct{}

// OK wraps a payload with the backend-declared status and message.
func OK[T any](status int, message string, payload T) Envelope[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return Envelope[T]{
		StatusCode: status,
		Message:    message,
		Payload:    &payload,
	}
}

// StatusOnly carries a backend outcome that has no payload, such as a
// "not found" result or a bare acknowledgement. This is a valid non-error
// outcome: the backend's own status and message are forwarded unchanged.
func StatusOnly[T any](status int, message string) Envelope[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return Envelope[T]{
		StatusCode: status,
		Message:    message,
	}
}

// Failure is the uniform translation of a transport or dispatch failure.
// The original error stays on the server side; callers see only the generic
// per-operation message.
func Failure[T any](operation string) Envelope[T] {
	return Envelope[T]{
		StatusCode: http.StatusInternalServerError,
		Message:    "Failed to " + operation,
		Error: &ErrorDetail{
			Code:      http.StatusInternalServerError,
			Message:   "Failed to " + operation,
			Details:   []string{},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// ClientFault reports a validation failure raised before dispatch. No
// backend call is made for these.
func ClientFault[T any](message string, details ...string) Envelope[T] {
	if details == nil {
		details = []string{}
	}
	return Envelope[T]{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Error: &ErrorDetail{
			Code:      http.StatusBadRequest,
			Message:   message,
			Details:   details,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}
