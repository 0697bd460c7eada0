package query

import (
	"context"
	"testing"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/users"
)

func TestResolveQueryReturnsEnvelope(t *testing.T) {
	resolve := func(_ context.Context, cc core.CallContext, input users.GetUserInput) core.Envelope[users.User] {
		if input.UserID != "u-1" {
			t.Fatalf("expected user id u-1, got %q", input.UserID)
		}
		if cc.HasToken {
			t.Fatalf("expected no credential")
		}
		return core.OK(200, "ok", users.User{ID: input.UserID})
	}

	q := NewResolveQuery(resolve)
	msg := Message[users.GetUserInput]{Name: TypeGetUser, Input: users.GetUserInput{UserID: "u-1"}}
	envelope, err := q.Query(context.Background(), msg)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if envelope.StatusCode != 200 || envelope.Payload == nil || envelope.Payload.ID != "u-1" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestResolveQueryRequiresResolveFunc(t *testing.T) {
	q := NewResolveQuery[users.GetUserInput, users.User](nil)
	msg := Message[users.GetUserInput]{Name: TypeGetUser}
	if _, err := q.Query(context.Background(), msg); err == nil {
		t.Fatalf("expected dependency error")
	}
}
