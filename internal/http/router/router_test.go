package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "lead_scoring_backend/internal/http"
	"lead_scoring_backend/platform/config"
	"lead_scoring_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type echoModule struct{}

func (echoModule) Name() string { return "echo" }

func (echoModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/public", func(c *gin.Context) { c.Status(http.StatusOK) })
	ctx.Protected.GET("/private", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func newApp(health apphttp.HealthChecker) *apphttp.App {
	gin.SetMode(gin.TestMode)
	return &apphttp.App{
		Config: &config.Config{
			JWTSecret:   "test-secret",
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Logger:  logger.New("development"),
		Health:  health,
		Modules: []apphttp.Module{echoModule{}},
	}
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthReflectsDatabase(t *testing.T) {
	if w := get(New(newApp(pinger{})), "/api/health"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(New(newApp(pinger{err: errors.New("down")})), "/api/health"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestModuleRoutesAreMounted(t *testing.T) {
	engine := New(newApp(pinger{}))

	if w := get(engine, "/api/v1/public"); w.Code != http.StatusOK {
		t.Fatalf("expected public route 200, got %d", w.Code)
	}
	if w := get(engine, "/api/v1/private"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected protected route 401, got %d", w.Code)
	}
}

func TestSecurityHeadersAreSet(t *testing.T) {
	w := get(New(newApp(pinger{})), "/api/health")
	if w.Header().Get("X-Content-Type-Options") != "nosniff" || w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing headers: %v", w.Header())
	}
}
