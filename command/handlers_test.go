package command

import (
	"context"
	"testing"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/users"
)

func TestResolveCommandExecuteStoresEnvelope(t *testing.T) {
	called := false
	resolve := func(_ context.Context, cc core.CallContext, input users.UpdateUserInput) core.Envelope[users.User] {
		called = true
		if input.UserID != "u-1" {
			t.Fatalf("expected user id u-1, got %q", input.UserID)
		}
		if !cc.HasToken || cc.Token != "abc123" {
			t.Fatalf("expected extracted credential, got %+v", cc)
		}
		return core.OK(200, "ok", users.User{ID: input.UserID})
	}

	cmd := NewResolveCommand(resolve)
	collector := gocmd.NewResult[core.Envelope[users.User]]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	msg := Message[users.UpdateUserInput]{
		Name:    TypeUpdateUser,
		Headers: map[string]string{"authorization": "Bearer abc123"},
		Input:   users.UpdateUserInput{UserID: "u-1"},
	}
	if err := cmd.Execute(ctx, msg); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called {
		t.Fatalf("expected resolve invocation")
	}

	envelope, ok := collector.Load()
	if !ok {
		t.Fatalf("expected envelope to be stored")
	}
	if envelope.StatusCode != 200 || envelope.Payload == nil || envelope.Payload.ID != "u-1" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestResolveCommandRequiresResolveFunc(t *testing.T) {
	cmd := NewResolveCommand[users.UpdateUserInput, users.User](nil)
	msg := Message[users.UpdateUserInput]{Name: TypeUpdateUser}
	if err := cmd.Execute(context.Background(), msg); err == nil {
		t.Fatalf("expected dependency error")
	}
}

func TestMessageValidateRequiresName(t *testing.T) {
	msg := Message[users.UpdateUserInput]{}
	if err := msg.Validate(); err == nil {
		t.Fatalf("expected validation error for missing name")
	}
	msg.Name = TypeUpdateUser
	if err := msg.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
	if msg.Type() != TypeUpdateUser {
		t.Fatalf("unexpected type %q", msg.Type())
	}
}
