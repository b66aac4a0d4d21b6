package config

import "testing"

func TestLoadIncludesTrafficControlDefaults(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("API_RATE_LIMIT_BURST", "")
	t.Setenv("API_MAX_IN_FLIGHT", "")
	t.Setenv("NATS_SUBJECT", "")

	cfg := Load()
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected default rate limit rps 50, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 100 {
		t.Fatalf("expected default rate limit burst 100, got %d", cfg.APIRateLimitBurst)
	}
	if cfg.APIMaxInFlight != 256 {
		t.Fatalf("expected default max in flight 256, got %d", cfg.APIMaxInFlight)
	}
	if cfg.NATSSubject != "seguimiento.actualizado" {
		t.Fatalf("expected default nats subject, got %q", cfg.NATSSubject)
	}
}

func TestLoadParsesTrafficControlOverrides(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "5")
	t.Setenv("API_RATE_LIMIT_BURST", "10")
	t.Setenv("API_MAX_IN_FLIGHT", "32")
	t.Setenv("ADMIN_API_TOKEN", "secreto")

	cfg := Load()
	if cfg.APIRateLimitRPS != 5 {
		t.Fatalf("expected rate limit rps 5, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 10 {
		t.Fatalf("expected rate limit burst 10, got %d", cfg.APIRateLimitBurst)
	}
	if cfg.APIMaxInFlight != 32 {
		t.Fatalf("expected max in flight 32, got %d", cfg.APIMaxInFlight)
	}
	if cfg.AdminAPIToken != "secreto" {
		t.Fatalf("expected admin token override, got %q", cfg.AdminAPIToken)
	}
}

func TestLoadIgnoresMalformedIntegers(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "mucho")

	cfg := Load()
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected fallback rps 50 for malformed value, got %d", cfg.APIRateLimitRPS)
	}
}
