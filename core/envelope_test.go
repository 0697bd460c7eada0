package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestOKForwardsBackendStatusAndMessage(t *testing.T) {
	envelope := OK(201, "created", "payload")
	if envelope.StatusCode != 201 || envelope.Message != "created" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
	if envelope.Payload == nil || *envelope.Payload != "payload" {
		t.Fatalf("expected payload to be set")
	}
	if envelope.Error != nil {
		t.Fatalf("expected no error detail")
	}
}

func TestOKDefaultsZeroStatusTo200(t *testing.T) {
	envelope := OK(0, "ok", 1)
	if envelope.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", envelope.StatusCode)
	}
}

func TestStatusOnlyCarriesNoPayloadAndNoError(t *testing.T) {
	envelope := StatusOnly[string](404, "record not found")
	if envelope.StatusCode != 404 || envelope.Message != "record not found" {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
	if envelope.Payload != nil || envelope.Error != nil {
		t.Fatalf("expected neither payload nor error")
	}
}

func TestFailureUsesGenericOperationMessage(t *testing.T) {
	envelope := Failure[string]("fetch user")
	if envelope.StatusCode != 500 {
		t.Fatalf("expected 500, got %d", envelope.StatusCode)
	}
	if envelope.Message != "Failed to fetch user" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
	if envelope.Payload != nil {
		t.Fatalf("expected no payload on failure")
	}
	if envelope.Error == nil {
		t.Fatalf("expected error detail")
	}
	if envelope.Error.Code != 500 || envelope.Error.Message != "Failed to fetch user" {
		t.Fatalf("unexpected error detail %+v", envelope.Error)
	}
	if len(envelope.Error.Details) != 0 {
		t.Fatalf("expected empty details, got %v", envelope.Error.Details)
	}
	if _, err := time.Parse(time.RFC3339, envelope.Error.Timestamp); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %q: %v", envelope.Error.Timestamp, err)
	}
}

func TestClientFaultCarriesDetails(t *testing.T) {
	envelope := ClientFault[string]("Invalid upload", "fileName is required")
	if envelope.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", envelope.StatusCode)
	}
	if envelope.Error == nil || len(envelope.Error.Details) != 1 {
		t.Fatalf("expected one detail, got %+v", envelope.Error)
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	envelope := OK(200, "ok", map[string]string{"id": "1"})
	raw, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	body := string(raw)
	for _, key := range []string{`"statusCode"`, `"message"`, `"payload"`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in %s", key, body)
		}
	}
	if strings.Contains(body, `"error"`) {
		t.Fatalf("expected no error field on success, got %s", body)
	}
}

func TestPaginationMetaOmitsZeroPageAndLimit(t *testing.T) {
	raw, err := json.Marshal(PaginationMeta{TotalCount: 7})
	if err != nil {
		t.Fatalf("marshal pagination meta: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, `"page"`) || strings.Contains(body, `"limit"`) {
		t.Fatalf("expected cursor-less meta to carry totalCount only, got %s", body)
	}
}
