package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-gateway/core"
)

type scriptedClient struct {
	domain core.Domain
	script func(done func(core.BackendResult, error))
	calls  int
}

func (c *scriptedClient) Domain() core.Domain { return c.domain }
func (c *scriptedClient) Address() string     { return "localhost:0" }

func (c *scriptedClient) Call(_ context.Context, _ string, _ any, _ core.Metadata, done func(core.BackendResult, error)) {
	c.calls++
	c.script(done)
}

func TestAwaitReturnsFirstOutcome(t *testing.T) {
	client := &scriptedClient{domain: core.DomainUser, script: func(done func(core.BackendResult, error)) {
		done(core.BackendResult{Body: []byte(`{"status":200}`)}, nil)
	}}

	result, err := Await(context.Background(), client, "GetUser", nil, core.Metadata{})
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if len(result.Body) == 0 {
		t.Fatalf("expected result body")
	}
	if client.calls != 1 {
		t.Fatalf("expected exactly one outbound call, got %d", client.calls)
	}
}

func TestAwaitSwallowsDoubleCompletion(t *testing.T) {
	client := &scriptedClient{domain: core.DomainUser, script: func(done func(core.BackendResult, error)) {
		done(core.BackendResult{Body: []byte(`first`)}, nil)
		done(core.BackendResult{Body: []byte(`second`)}, errors.New("late failure"))
	}}

	result, err := Await(context.Background(), client, "GetUser", nil, core.Metadata{})
	if err != nil {
		t.Fatalf("expected first outcome to win, got error %v", err)
	}
	if string(result.Body) != "first" {
		t.Fatalf("expected first outcome, got %q", result.Body)
	}
}

func TestAwaitPropagatesCallbackError(t *testing.T) {
	client := &scriptedClient{domain: core.DomainWallet, script: func(done func(core.BackendResult, error)) {
		done(core.BackendResult{}, errors.New("wallet backend down"))
	}}

	if _, err := Await(context.Background(), client, "GetWallet", nil, core.Metadata{}); err == nil {
		t.Fatalf("expected callback error to surface")
	}
}

func TestAwaitHonorsContextCancellationOnDroppedCallback(t *testing.T) {
	client := &scriptedClient{domain: core.DomainChat, script: func(func(core.BackendResult, error)) {
		// backend hangs, callback never fires
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Await(ctx, client, "ListMessages", nil, core.Metadata{})
	if err == nil {
		t.Fatalf("expected deadline error")
	}
	if !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected deadline in error, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("await did not return promptly after deadline")
	}
}

func TestAwaitRejectsAlreadyCanceledContext(t *testing.T) {
	client := &scriptedClient{domain: core.DomainChat, script: func(done func(core.BackendResult, error)) {
		done(core.BackendResult{}, nil)
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Await(ctx, client, "ListMessages", nil, core.Metadata{}); err == nil {
		t.Fatalf("expected canceled context to fail")
	}
	if client.calls != 0 {
		t.Fatalf("expected no outbound call on canceled context, got %d", client.calls)
	}
}

func TestAwaitRequiresClient(t *testing.T) {
	if _, err := Await(context.Background(), nil, "GetUser", nil, core.Metadata{}); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
