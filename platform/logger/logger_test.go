package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestWithContextAddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UsernameKey, "admin")
	log.WithContext(ctx).Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-1" || entry["username"] != "admin" {
		t.Fatalf("missing context attributes: %v", entry)
	}
}

func TestProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.EnrichmentEvent("simulator", "lead@example.com", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected successful lookups to log at debug, got %q", buf.String())
	}

	log.EnrichmentEvent("simulator", "lead@example.com", errors.New("outage"))
	if !strings.Contains(buf.String(), `"level":"WARN"`) || !strings.Contains(buf.String(), "outage") {
		t.Fatalf("expected failed lookup warning, got %q", buf.String())
	}
}

func TestDevelopmentLogsDebugAsText(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("development", &buf).AuthEvent("login", "admin", false, "invalid credentials")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `reason="invalid credentials"`) {
		t.Fatalf("unexpected output %q", out)
	}
}
