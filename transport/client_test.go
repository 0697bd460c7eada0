package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-gateway/core"
)

func callSync(t *testing.T, client *Client, operation string, payload any, md core.Metadata) (core.BackendResult, error) {
	t.Helper()
	var (
		result core.BackendResult
		err    error
		fired  int
	)
	client.Call(context.Background(), operation, payload, md, func(r core.BackendResult, e error) {
		fired++
		result = r
		err = e
	})
	if fired != 1 {
		t.Fatalf("expected done to fire exactly once, fired %d times", fired)
	}
	return result, err
}

func TestClientPostsToServiceOperationPath(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"status":200,"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(core.DomainUser, server.URL)
	md := core.Metadata{core.MetadataAuthorization: "Bearer abc123"}
	result, err := callSync(t, client, "GetUser", map[string]string{"user_id": "u-1"}, md)
	if err != nil {
		t.Fatalf("call: %v", err)
	}

	if gotPath != "/UserService/GetUser" {
		t.Fatalf("expected /UserService/GetUser, got %q", gotPath)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer credential forwarded, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if gotBody["user_id"] != "u-1" {
		t.Fatalf("expected user_id in payload, got %v", gotBody)
	}
	if len(result.Body) == 0 {
		t.Fatalf("expected response body")
	}
}

func TestClientWithoutCredentialStillIssuesCall(t *testing.T) {
	var sawAuthHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{"status":200,"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(core.DomainUser, server.URL)
	if _, err := callSync(t, client, "GetUser", map[string]string{}, core.Metadata{}); err != nil {
		t.Fatalf("expected call to succeed without credential: %v", err)
	}
	if sawAuthHeader {
		t.Fatalf("expected no authorization header")
	}
}

func TestClientSurfacesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(core.DomainCard, server.URL)
	if _, err := callSync(t, client, "GetCard", map[string]string{}, core.Metadata{}); err == nil {
		t.Fatalf("expected error for unreachable backend")
	}
}

func TestClientTreatsServerErrorStatusAsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(core.DomainCard, server.URL)
	if _, err := callSync(t, client, "GetCard", map[string]string{}, core.Metadata{}); err == nil {
		t.Fatalf("expected error for 5xx backend status")
	}
}

func TestClientReturnsBodyForBusinessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":404,"message":"card not found"}`))
	}))
	defer server.Close()

	client := NewClient(core.DomainCard, server.URL)
	result, err := callSync(t, client, "GetCard", map[string]string{}, core.Metadata{})
	if err != nil {
		t.Fatalf("expected business status to pass through: %v", err)
	}
	if result.Metadata["http_status"] != http.StatusNotFound {
		t.Fatalf("expected http_status metadata, got %v", result.Metadata)
	}
}

func TestClientEnforcesResponseBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 64))
	}))
	defer server.Close()

	client := NewClient(core.DomainUser, server.URL, WithResponseBodyLimit(16))
	if _, err := callSync(t, client, "ListUsers", map[string]string{}, core.Metadata{}); err == nil {
		t.Fatalf("expected oversized response to fail")
	}
}

func TestClientRequiresOperation(t *testing.T) {
	client := NewClient(core.DomainUser, "localhost:0")
	if _, err := callSync(t, client, "  ", nil, core.Metadata{}); err == nil {
		t.Fatalf("expected error for empty operation")
	}
}

func TestClientHonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(core.DomainChat, server.URL)
	var fired int
	var callErr error
	client.Call(ctx, "ListConversations", map[string]string{}, core.Metadata{}, func(_ core.BackendResult, err error) {
		fired++
		callErr = err
	})
	if fired != 1 {
		t.Fatalf("expected done to fire exactly once, fired %d times", fired)
	}
	if callErr == nil {
		t.Fatalf("expected canceled context to fail the call")
	}
}
