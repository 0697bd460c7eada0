package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gateway/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB

// HTTPDoer is the seam used to execute outbound backend requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a callback-style backend RPC client. Operations are dispatched as
// JSON documents posted to <address>/<Service>/<Operation>, and the outcome is
// delivered through the done callback exactly once.
type Client struct {
	domain               core.Domain
	address              string
	httpClient           HTTPDoer
	maxResponseBodyBytes int64
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithResponseBodyLimit caps how many response bytes the client will read.
func WithResponseBodyLimit(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxResponseBodyBytes = limit
		}
	}
}

func NewClient(domain core.Domain, address string, options ...Option) *Client {
	client := &Client{
		domain:               domain,
		address:              strings.TrimRight(strings.TrimSpace(address), "/"),
		httpClient:           &http.Client{Timeout: defaultClientTimeout},
		maxResponseBodyBytes: defaultResponseBodyLimit,
	}
	for _, option := range options {
		if option != nil {
			option(client)
		}
	}
	return client
}

func (c *Client) Domain() core.Domain {
	if c == nil {
		return ""
	}
	return c.domain
}

func (c *Client) Address() string {
	if c == nil {
		return ""
	}
	return c.address
}

// Call executes one backend operation. The done callback fires exactly once,
// with either the raw backend result or a transport error, never both.
func (c *Client) Call(ctx context.Context, operation string, payload any, md core.Metadata, done func(core.BackendResult, error)) {
	finish := onceDone(done)

	if c == nil || c.httpClient == nil {
		finish(core.BackendResult{}, transportError(
			"transport: backend client requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"domain": string(c.Domain())},
		))
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	operation = strings.TrimSpace(operation)
	if operation == "" {
		finish(core.BackendResult{}, transportError(
			"transport: operation is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"domain": string(c.domain)},
		))
		return
	}
	if c.address == "" {
		finish(core.BackendResult{}, transportError(
			"transport: backend address is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"domain": string(c.domain), "operation": operation},
		))
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		finish(core.BackendResult{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: encode request payload",
			http.StatusBadRequest,
			map[string]any{"domain": string(c.domain), "operation": operation},
		))
		return
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.address, c.domain.Service(), operation)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		finish(core.BackendResult{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create backend request",
			http.StatusBadRequest,
			map[string]any{"domain": string(c.domain), "operation": operation, "url": endpoint},
		))
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for key, value := range md {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), value)
	}

	startedAt := time.Now().UTC()
	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		finish(core.BackendResult{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute backend request",
			http.StatusBadGateway,
			map[string]any{"domain": string(c.domain), "operation": operation, "url": endpoint},
		))
		return
	}
	defer httpRes.Body.Close()

	resBody, err := io.ReadAll(io.LimitReader(httpRes.Body, c.maxResponseBodyBytes+1))
	if err != nil {
		finish(core.BackendResult{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read backend response",
			http.StatusBadGateway,
			map[string]any{"domain": string(c.domain), "operation": operation, "http_status": httpRes.StatusCode},
		))
		return
	}
	if int64(len(resBody)) > c.maxResponseBodyBytes {
		finish(core.BackendResult{}, transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", c.maxResponseBodyBytes),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{"domain": string(c.domain), "operation": operation, "response_limit_b": c.maxResponseBodyBytes},
		))
		return
	}
	if httpRes.StatusCode >= http.StatusInternalServerError {
		finish(core.BackendResult{}, transportError(
			fmt.Sprintf("transport: backend replied with http status %d", httpRes.StatusCode),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{"domain": string(c.domain), "operation": operation, "http_status": httpRes.StatusCode},
		))
		return
	}

	finish(core.BackendResult{
		Body: resBody,
		Metadata: map[string]any{
			"domain":      string(c.domain),
			"operation":   operation,
			"http_status": httpRes.StatusCode,
			"duration_ms": time.Since(startedAt).Milliseconds(),
		},
	}, nil)
}

// onceDone wraps the caller's callback so repeated completions become no-ops.
func onceDone(done func(core.BackendResult, error)) func(core.BackendResult, error) {
	var once sync.Once
	return func(result core.BackendResult, err error) {
		if done == nil {
			return
		}
		once.Do(func() {
			done(result, err)
		})
	}
}

var _ core.BackendClient = (*Client)(nil)
