// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	GetMigrationsDir() string
}

// JWTConfig provides settings for signing and verifying dashboard sessions.
type JWTConfig interface {
	GetJWTSecret() string
	GetAuthTokenTTL() time.Duration
}

// DashboardConfig provides the dashboard login settings.
type DashboardConfig interface {
	JWTConfig
	GetDashboardUsername() string
	GetDashboardPassword() string
	GetAuthCookieSecure() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides the public lead submission rate limit.
type RateLimitConfig interface {
	GetLeadSubmitRatePerMinute() int
}

// EnrichmentConfig provides settings for the enrichment provider.
// A non-empty API key selects the live AnyMail Finder provider; otherwise
// the deterministic simulator is used.
type EnrichmentConfig interface {
	GetAnyMailFinderAPIKey() string
	GetAnyMailFinderBaseURL() string
	GetEnrichmentTimeout() time.Duration
	GetEnrichmentSimulatedLatency() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                        string
	HTTPAddr                   string
	DatabaseURL                string
	MigrationsDir              string
	JWTSecret                  string
	AuthTokenTTL               time.Duration
	DashboardUsername          string
	DashboardPassword          string
	AuthCookieSecure           bool
	CORSAllowAll               bool
	CORSOrigins                []string
	CORSAllowCreds             bool
	LeadSubmitRatePerMinute    int
	AnyMailFinderAPIKey        string
	AnyMailFinderBaseURL       string
	EnrichmentTimeout          time.Duration
	EnrichmentSimulatedLatency bool
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string   { return c.DatabaseURL }
func (c *Config) GetMigrationsDir() string { return c.MigrationsDir }

// JWTConfig implementation
func (c *Config) GetJWTSecret() string           { return c.JWTSecret }
func (c *Config) GetAuthTokenTTL() time.Duration { return c.AuthTokenTTL }

// DashboardConfig implementation
func (c *Config) GetDashboardUsername() string { return c.DashboardUsername }
func (c *Config) GetDashboardPassword() string { return c.DashboardPassword }
func (c *Config) GetAuthCookieSecure() bool    { return c.AuthCookieSecure }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetLeadSubmitRatePerMinute() int { return c.LeadSubmitRatePerMinute }

// EnrichmentConfig implementation
func (c *Config) GetAnyMailFinderAPIKey() string      { return c.AnyMailFinderAPIKey }
func (c *Config) GetAnyMailFinderBaseURL() string     { return c.AnyMailFinderBaseURL }
func (c *Config) GetEnrichmentTimeout() time.Duration { return c.EnrichmentTimeout }
func (c *Config) GetEnrichmentSimulatedLatency() bool { return c.EnrichmentSimulatedLatency }

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	env := getEnv("APP_ENV", "development")
	cookieSecure := strings.EqualFold(getEnv("AUTH_COOKIE_SECURE", ""), "true")
	if getEnv("AUTH_COOKIE_SECURE", "") == "" {
		cookieSecure = strings.EqualFold(env, "production")
	}

	cfg := &Config{
		Env:                        env,
		HTTPAddr:                   getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:                getEnv("DATABASE_URL", ""),
		MigrationsDir:              getEnv("MIGRATIONS_DIR", "migrations"),
		JWTSecret:                  getEnv("JWT_SECRET", ""),
		AuthTokenTTL:               mustDuration(getEnv("AUTH_TOKEN_TTL", "24h")),
		DashboardUsername:          getEnv("DASHBOARD_USERNAME", "admin"),
		DashboardPassword:          getEnv("DASHBOARD_PASSWORD", "admin123"),
		AuthCookieSecure:           cookieSecure,
		CORSAllowAll:               corsAllowAll,
		CORSOrigins:                corsOrigins,
		CORSAllowCreds:             strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		LeadSubmitRatePerMinute:    mustInt(getEnv("LEAD_SUBMIT_RATE_PER_MIN", "30")),
		AnyMailFinderAPIKey:        getEnv("ANYMAIL_FINDER_API_KEY", ""),
		AnyMailFinderBaseURL:       getEnv("ANYMAIL_FINDER_BASE_URL", "https://api.anymailfinder.com"),
		EnrichmentTimeout:          mustDuration(getEnv("ENRICHMENT_TIMEOUT", "10s")),
		EnrichmentSimulatedLatency: !strings.EqualFold(getEnv("ENRICHMENT_SIMULATED_LATENCY", "true"), "false"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AuthTokenTTL <= 0 {
		return nil, fmt.Errorf("AUTH_TOKEN_TTL must be a positive duration")
	}
	if cfg.DashboardUsername == "" || cfg.DashboardPassword == "" {
		return nil, fmt.Errorf("DASHBOARD_USERNAME and DASHBOARD_PASSWORD must not be empty")
	}
	if !cfg.CORSAllowAll && len(cfg.CORSOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ORIGINS must list at least one origin unless CORS_ALLOW_ALL is true")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.LeadSubmitRatePerMinute <= 0 {
		cfg.LeadSubmitRatePerMinute = 30
	}
	if cfg.EnrichmentTimeout <= 0 {
		cfg.EnrichmentTimeout = 10 * time.Second
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
