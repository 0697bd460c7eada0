package transactions

import (
	"context"
	"testing"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

type captureClient struct {
	payload any
	body    string
}

func (c *captureClient) Domain() core.Domain { return core.DomainTransaction }
func (c *captureClient) Address() string     { return "localhost:0" }

func (c *captureClient) Call(_ context.Context, _ string, payload any, _ core.Metadata, done func(core.BackendResult, error)) {
	c.payload = payload
	done(core.BackendResult{Body: []byte(c.body)}, nil)
}

func testResolver(client *captureClient) *Resolver {
	registry := core.NewClientRegistry(core.DefaultConfig(), func(core.Domain, string) (core.BackendClient, error) {
		return client, nil
	})
	return NewResolver(resolver.Resources{Registry: registry, Metrics: core.NopMetricsRecorder{}})
}

func TestListTransactionsDefaultsSortToCreatedAtAscending(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"ok","transactions":[]}`}
	r := testResolver(client)

	r.ListTransactions(context.Background(), core.NewCallContext(nil), ListTransactionsInput{})
	request, ok := client.payload.(listTransactionsRequest)
	if !ok {
		t.Fatalf("expected listTransactionsRequest payload, got %T", client.payload)
	}
	if request.SortBy != "created_at" || request.Order != "asc" {
		t.Fatalf("expected created_at asc, got %q %q", request.SortBy, request.Order)
	}
	if request.Page != 1 || request.Limit != 10 {
		t.Fatalf("expected page=1 limit=10, got page=%d limit=%d", request.Page, request.Limit)
	}
}

func TestListTransactionsKeepsExplicitSort(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"ok","transactions":[]}`}
	r := testResolver(client)

	r.ListTransactions(context.Background(), core.NewCallContext(nil), ListTransactionsInput{SortBy: "amount", Order: "desc"})
	request := client.payload.(listTransactionsRequest)
	if request.SortBy != "amount" || request.Order != "desc" {
		t.Fatalf("expected explicit sort kept, got %q %q", request.SortBy, request.Order)
	}
}
