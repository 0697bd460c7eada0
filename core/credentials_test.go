package core

import "testing"

func TestExtractTokenStripsBearerPrefix(t *testing.T) {
	token, ok := ExtractToken(map[string]string{"authorization": "Bearer abc123"})
	if !ok {
		t.Fatalf("expected token to be extracted")
	}
	if token != "abc123" {
		t.Fatalf("expected abc123, got %q", token)
	}
}

func TestExtractTokenPassesRawValueThrough(t *testing.T) {
	token, ok := ExtractToken(map[string]string{"authorization": "abc123"})
	if !ok {
		t.Fatalf("expected token to be extracted")
	}
	if token != "abc123" {
		t.Fatalf("expected raw value unchanged, got %q", token)
	}
}

func TestExtractTokenAbsentHeader(t *testing.T) {
	token, ok := ExtractToken(map[string]string{"content-type": "application/json"})
	if ok {
		t.Fatalf("expected no token, got %q", token)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
}

func TestExtractTokenHeaderNameIsCaseInsensitive(t *testing.T) {
	token, ok := ExtractToken(map[string]string{"Authorization": "Bearer xyz"})
	if !ok || token != "xyz" {
		t.Fatalf("expected xyz, got %q ok=%v", token, ok)
	}
}

func TestExtractTokenEmptyBearerValue(t *testing.T) {
	if token, ok := ExtractToken(map[string]string{"authorization": "Bearer "}); ok {
		t.Fatalf("expected no token for bare prefix, got %q", token)
	}
}

func TestAttachTokenSetsBearerCredential(t *testing.T) {
	md := Metadata{}
	AttachToken(md, "abc123")
	if got := md[MetadataAuthorization]; got != "Bearer abc123" {
		t.Fatalf("expected bearer credential, got %q", got)
	}
}

func TestAttachTokenSkipsEmptyToken(t *testing.T) {
	md := Metadata{}
	AttachToken(md, "  ")
	if _, ok := md[MetadataAuthorization]; ok {
		t.Fatalf("expected no credential for empty token")
	}
}

func TestNewCallContextExtractsToken(t *testing.T) {
	cc := NewCallContext(map[string]string{"authorization": "Bearer abc123"})
	if !cc.HasToken || cc.Token != "abc123" {
		t.Fatalf("expected token abc123, got %q hasToken=%v", cc.Token, cc.HasToken)
	}
	if cc.RequestID == "" {
		t.Fatalf("expected request id to be assigned")
	}
}

func TestNewCallContextWithoutCredential(t *testing.T) {
	cc := NewCallContext(nil)
	if cc.HasToken || cc.Token != "" {
		t.Fatalf("expected no token, got %q", cc.Token)
	}
}
