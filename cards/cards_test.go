package cards

import (
	"context"
	"testing"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

type captureClient struct {
	operation string
	payload   any
	body      string
}

func (c *captureClient) Domain() core.Domain { return core.DomainCard }
func (c *captureClient) Address() string     { return "localhost:0" }

func (c *captureClient) Call(_ context.Context, operation string, payload any, _ core.Metadata, done func(core.BackendResult, error)) {
	c.operation = operation
	c.payload = payload
	done(core.BackendResult{Body: []byte(c.body)}, nil)
}

func testResolver(client *captureClient) *Resolver {
	registry := core.NewClientRegistry(core.DefaultConfig(), func(core.Domain, string) (core.BackendClient, error) {
		return client, nil
	})
	return NewResolver(resolver.Resources{Registry: registry, Metrics: core.NopMetricsRecorder{}})
}

func TestCreateCardWrapsEntity(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"created","card":{"id":"c-1","title":"Sphinx"}}`}
	r := testResolver(client)

	r.CreateCard(context.Background(), core.NewCallContext(nil), CreateCardInput{Title: "Sphinx"})
	request, ok := client.payload.(createCardRequest)
	if !ok {
		t.Fatalf("expected createCardRequest payload, got %T", client.payload)
	}
	if request.Card.Title != "Sphinx" {
		t.Fatalf("expected title under card entity, got %+v", request)
	}
	if request.Card.Language != "en" {
		t.Fatalf("expected default language en, got %q", request.Card.Language)
	}
	if client.operation != "CreateCard" {
		t.Fatalf("expected CreateCard operation, got %q", client.operation)
	}
}

func TestUpdateCardMergesIDIntoChangeSet(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"updated","card":{"id":"c-1"}}`}
	r := testResolver(client)

	r.UpdateCard(context.Background(), core.NewCallContext(nil), UpdateCardInput{CardID: "c-1", Title: "Giza"})
	request, ok := client.payload.(updateCardRequest)
	if !ok {
		t.Fatalf("expected updateCardRequest payload, got %T", client.payload)
	}
	if request.ID != "c-1" || request.Title != "Giza" {
		t.Fatalf("expected id merged with change set, got %+v", request)
	}
}

func TestListCardsDefaultsLanguageAndPagination(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"ok","cards":[]}`}
	r := testResolver(client)

	r.ListCards(context.Background(), core.NewCallContext(nil), ListCardsInput{})
	request, ok := client.payload.(listCardsRequest)
	if !ok {
		t.Fatalf("expected listCardsRequest payload, got %T", client.payload)
	}
	if request.Language != "en" {
		t.Fatalf("expected default language en, got %q", request.Language)
	}
	if request.Page != 1 || request.Limit != 10 {
		t.Fatalf("expected page=1 limit=10, got page=%d limit=%d", request.Page, request.Limit)
	}
}

func TestListCardsKeepsExplicitLanguage(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"ok","cards":[]}`}
	r := testResolver(client)

	r.ListCards(context.Background(), core.NewCallContext(nil), ListCardsInput{Language: "ar"})
	request := client.payload.(listCardsRequest)
	if request.Language != "ar" {
		t.Fatalf("expected explicit language kept, got %q", request.Language)
	}
}
