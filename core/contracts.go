package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

// Metadata is the outbound call metadata channel. Transport clients map it
// onto their wire headers; the credential propagator writes the bearer token
// into it.
type Metadata map[string]string

// CallContext carries the per-request values extracted from the inbound call.
// Created fresh per inbound operation, discarded when the call completes,
// never shared across requests.
type CallContext struct {
	RequestID string
	Token     string
	HasToken  bool
}

// NewCallContext builds a CallContext from the inbound call headers.
func NewCallContext(headers map[string]string) CallContext {
	token, ok := ExtractToken(headers)
	return CallContext{
		RequestID: uuid.NewString(),
		Token:     token,
		HasToken:  ok,
	}
}

// BackendResult is the raw outcome of one backend call. The domain
// normalizers decode Body into their typed wire shapes.
type BackendResult struct {
	Body     []byte
	Metadata map[string]any
}

// BackendClient is one long-lived handle against a backend service. The
// client completes the done callback exactly once per Call, either with a
// result or with an error. Handles are safe for concurrent use; each call is
// independent and carries its own payload and metadata.
type BackendClient interface {
	Domain() Domain
	Address() string
	Call(ctx context.Context, operation string, payload any, md Metadata, done func(BackendResult, error))
}

// ClientFactory builds the handle for a domain at its resolved address.
// Called at most once per domain per process by the registry.
type ClientFactory func(domain Domain, address string) (BackendClient, error)

// BackendStatus is the status/message pair every backend response carries.
// Embedded by the per-operation wire structs in the domain packages.
type BackendStatus struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// BackendPagination is the nested snake_case pagination wrapper the backends
// return on list responses.
type BackendPagination struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

// Meta copies the backend wrapper into the flat public shape.
func (p *BackendPagination) Meta() *PaginationMeta {
	if p == nil {
		return nil
	}
	return &PaginationMeta{
		TotalCount: p.TotalCount,
		Page:       p.Page,
		Limit:      p.Limit,
	}
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
