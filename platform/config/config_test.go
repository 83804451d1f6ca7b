package config

import (
	"os"
	"testing"
	"time"
)

var configKeys = []string{
	"APP_ENV", "HTTP_ADDR", "DATABASE_URL", "MIGRATIONS_DIR", "JWT_SECRET",
	"AUTH_TOKEN_TTL", "AUTH_COOKIE_SECURE", "DASHBOARD_USERNAME", "DASHBOARD_PASSWORD",
	"CORS_ORIGINS", "CORS_ALLOW_ALL", "CORS_ALLOW_CREDENTIALS", "LEAD_SUBMIT_RATE_PER_MIN",
	"ANYMAIL_FINDER_API_KEY", "ANYMAIL_FINDER_BASE_URL", "ENRICHMENT_TIMEOUT",
	"ENRICHMENT_SIMULATED_LATENCY",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/leads")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetHTTPAddr() != ":8080" || cfg.GetMigrationsDir() != "migrations" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.GetAuthTokenTTL() != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %s", cfg.GetAuthTokenTTL())
	}
	if cfg.GetDashboardUsername() != "admin" || cfg.GetDashboardPassword() != "admin123" {
		t.Fatal("expected default dashboard credentials")
	}
	if cfg.GetAuthCookieSecure() {
		t.Fatal("expected insecure cookie outside production")
	}
	if cfg.GetLeadSubmitRatePerMinute() != 30 || cfg.GetEnrichmentTimeout() != 10*time.Second {
		t.Fatalf("unexpected limits %+v", cfg)
	}
	if !cfg.GetEnrichmentSimulatedLatency() || cfg.GetAnyMailFinderAPIKey() != "" {
		t.Fatal("expected simulated enrichment with latency by default")
	}
	if got := cfg.GetCORSOrigins(); len(got) != 1 || got[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins %v", got)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/leads")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("ANYMAIL_FINDER_API_KEY", "  ")
	t.Setenv("ENRICHMENT_SIMULATED_LATENCY", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LEAD_SUBMIT_RATE_PER_MIN", "abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.GetAuthCookieSecure() {
		t.Fatal("expected secure cookie in production")
	}
	if cfg.GetAnyMailFinderAPIKey() != "  " {
		t.Fatalf("expected key kept as set, got %q", cfg.GetAnyMailFinderAPIKey())
	}
	if cfg.GetEnrichmentSimulatedLatency() {
		t.Fatal("expected latency disabled")
	}
	if len(cfg.GetCORSOrigins()) != 2 {
		t.Fatalf("expected two origins, got %v", cfg.GetCORSOrigins())
	}
	if cfg.GetLeadSubmitRatePerMinute() != 30 {
		t.Fatalf("expected fallback rate, got %d", cfg.GetLeadSubmitRatePerMinute())
	}
}

func TestLoadRejectsWildcardWithCredentials(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "*")

	if _, err := Load(); err == nil {
		t.Fatal("expected credentials with wildcard origin to be rejected")
	}

	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatal("expected wildcard to allow all origins")
	}
}
