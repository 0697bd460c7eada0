package core

import (
	"context"
	"testing"
)

func TestDefaultConfigCoversEveryDomain(t *testing.T) {
	cfg := DefaultConfig()
	for _, domain := range Domains() {
		address, ok := cfg.Addresses[string(domain)]
		if !ok || address == "" {
			t.Fatalf("expected default address for domain %q", domain)
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidateRejectsUnknownDomain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addresses["billing"] = "localhost:1"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown domain to be rejected")
	}
}

func TestConfigValidateRejectsEmptyAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addresses[string(DomainUser)] = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected empty address to be rejected")
	}
}

func TestAddressForFallsBackToDefault(t *testing.T) {
	cfg := Config{ServiceName: "gateway", Addresses: map[string]string{}}
	if got := cfg.AddressFor(DomainUpload); got != DomainUpload.DefaultAddress() {
		t.Fatalf("expected default address, got %q", got)
	}
}

func TestResolveConfigAppliesEnvOverride(t *testing.T) {
	env := map[string]string{
		"USER_SERVICE_URL": "users.internal:7001",
		"QUIZ_SERVICE_URL": "quizzes.internal:7009",
	}
	resolver := GoOptionsResolver{Getenv: func(key string) string { return env[key] }}

	cfg, err := ResolveConfig(context.Background(), nil, resolver, Config{})
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if got := cfg.AddressFor(DomainUser); got != "users.internal:7001" {
		t.Fatalf("expected env override for user domain, got %q", got)
	}
	if got := cfg.AddressFor(DomainQuiz); got != "quizzes.internal:7009" {
		t.Fatalf("expected env override for quiz domain, got %q", got)
	}
	if got := cfg.AddressFor(DomainCard); got != DomainCard.DefaultAddress() {
		t.Fatalf("expected default for card domain, got %q", got)
	}
}

func TestResolveConfigRuntimeBeatsEnv(t *testing.T) {
	env := map[string]string{"CARD_SERVICE_URL": "cards.env:1"}
	resolver := GoOptionsResolver{Getenv: func(key string) string { return env[key] }}
	runtime := Config{Addresses: map[string]string{string(DomainCard): "cards.runtime:2"}}

	cfg, err := ResolveConfig(context.Background(), nil, resolver, runtime)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if got := cfg.AddressFor(DomainCard); got != "cards.runtime:2" {
		t.Fatalf("expected runtime layer to win, got %q", got)
	}
}

func TestDomainMetadata(t *testing.T) {
	if got := DomainTemplate.Service(); got != "HistoryTemplateService" {
		t.Fatalf("unexpected service name %q", got)
	}
	if got := DomainProgress.EnvVar(); got != "USER_PROGRESS_SERVICE_URL" {
		t.Fatalf("unexpected env var %q", got)
	}
	if Domain("billing").Known() {
		t.Fatalf("expected unknown domain")
	}
}
