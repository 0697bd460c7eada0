package quizzes

import (
	"context"
	"reflect"
	"testing"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

type captureClient struct {
	payload any
	body    string
}

func (c *captureClient) Domain() core.Domain { return core.DomainQuiz }
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

func TestOptionsListToMap(t *testing.T) {
	options := []Option{
		{Key: "A", Value: "Paris"},
		{Key: "B", Value: "Rome"},
	}
	got := optionsToMap(options)
	want := map[string]string{"A": "Paris", "B": "Rome"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOptionsRoundTripSortedByKey(t *testing.T) {
	options := []Option{
		{Key: "C", Value: "Cairo"},
		{Key: "A", Value: "Paris"},
		{Key: "B", Value: "Rome"},
	}
	got := optionsFromMap(optionsToMap(options))
	want := []Option{
		{Key: "A", Value: "Paris"},
		{Key: "B", Value: "Rome"},
		{Key: "C", Value: "Cairo"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sorted round trip %v, got %v", want, got)
	}
}

func TestOptionsToMapDoesNotMutateInput(t *testing.T) {
	options := []Option{{Key: "A", Value: "Paris"}}
	optionsToMap(options)
	if options[0].Key != "A" || options[0].Value != "Paris" {
		t.Fatalf("input mutated: %v", options)
	}
}

func TestCreateQuizTranslatesOptionsToWireMap(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"created","quiz":{"id":"q-1","question":"Capital of France?","options":{"B":"Rome","A":"Paris"}}}`}
	r := testResolver(client)

	input := CreateQuizInput{
		Question:   "Capital of France?",
		Options:    []Option{{Key: "A", Value: "Paris"}, {Key: "B", Value: "Rome"}},
		CorrectKey: "A",
	}
	envelope := r.CreateQuiz(context.Background(), core.NewCallContext(nil), input)

	request, ok := client.payload.(createQuizRequest)
	if !ok {
		t.Fatalf("expected createQuizRequest payload, got %T", client.payload)
	}
	want := map[string]string{"A": "Paris", "B": "Rome"}
	if !reflect.DeepEqual(request.Options, want) {
		t.Fatalf("expected wire options %v, got %v", want, request.Options)
	}
	if request.Language != "en" {
		t.Fatalf("expected default language en, got %q", request.Language)
	}

	if envelope.Payload == nil {
		t.Fatalf("expected quiz payload")
	}
	gotOptions := envelope.Payload.Options
	wantOptions := []Option{{Key: "A", Value: "Paris"}, {Key: "B", Value: "Rome"}}
	if !reflect.DeepEqual(gotOptions, wantOptions) {
		t.Fatalf("expected reconstructed options %v, got %v", wantOptions, gotOptions)
	}
}

func TestGetQuizNotFoundIsValidOutcome(t *testing.T) {
	client := &captureClient{body: `{"status":404,"message":"quiz not found"}`}
	r := testResolver(client)

	envelope := r.GetQuiz(context.Background(), core.NewCallContext(nil), GetQuizInput{QuizID: "missing"})
	if envelope.StatusCode != 404 || envelope.Message != "quiz not found" {
		t.Fatalf("expected forwarded backend outcome, got %+v", envelope)
	}
	if envelope.Payload != nil || envelope.Error != nil {
		t.Fatalf("expected neither payload nor error on not found")
	}
}

func TestListQuizzesAppliesPaginationDefaults(t *testing.T) {
	client := &captureClient{body: `{"status":200,"message":"ok","quizzes":[]}`}
	r := testResolver(client)

	r.ListQuizzes(context.Background(), core.NewCallContext(nil), ListQuizzesInput{})
	request, ok := client.payload.(listQuizzesRequest)
	if !ok {
		t.Fatalf("expected listQuizzesRequest payload, got %T", client.payload)
	}
	if request.Page != 1 || request.Limit != 10 {
		t.Fatalf("expected page=1 limit=10, got page=%d limit=%d", request.Page, request.Limit)
	}
}
