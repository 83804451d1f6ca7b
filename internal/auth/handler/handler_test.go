package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lead_scoring_backend/platform/apperr"
	"lead_scoring_backend/platform/config"
	"lead_scoring_backend/platform/httpkit"
	"lead_scoring_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, username, password string) (string, error) {
	if username != "admin" || password != "admin123" {
		return "", apperr.Unauthorized("Invalid credentials")
	}
	return httpkit.SignSessionToken(username, testSecret, time.Hour, time.Now())
}

func (stubAuth) TokenTTL() time.Duration { return time.Hour }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubAuth{}, validator.New(), true)
	r := gin.New()
	h.RegisterRoutes(r.Group("/auth"))
	r.GET("/auth/me", httpkit.AuthRequired(&config.Config{JWTSecret: testSecret}), h.Me)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == httpkit.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := newRouter()
	w := doJSON(r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookie := sessionCookie(w)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie")
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.Path != "/" || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes %+v", cookie)
	}
	if cookie.MaxAge != int(time.Hour/time.Second) {
		t.Fatalf("expected max age 3600, got %d", cookie.MaxAge)
	}

	me := doJSON(r, http.MethodGet, "/auth/me", "", cookie)
	if me.Code != http.StatusOK || !strings.Contains(me.Body.String(), `"username":"admin"`) {
		t.Fatalf("expected /me to return admin, got %d: %s", me.Code, me.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	w := doJSON(newRouter(), http.MethodPost, "/auth/login", `{"username":"admin","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if sessionCookie(w) != nil {
		t.Fatal("expected no cookie on failed login")
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	r := newRouter()
	for _, body := range []string{`{"username":"admin"}`, `{"password":"x"}`, `{}`} {
		if w := doJSON(r, http.MethodPost, "/auth/login", body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
	}
	if w := doJSON(r, http.MethodPost, "/auth/login", `nope`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid json, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	w := doJSON(newRouter(), http.MethodPost, "/auth/logout", "")
	cookie := sessionCookie(w)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookie)
	}
}

func TestMeRequiresSession(t *testing.T) {
	r := newRouter()
	if w := doJSON(r, http.MethodGet, "/auth/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", w.Code)
	}
	bad := &http.Cookie{Name: httpkit.AuthCookieName, Value: "garbage"}
	if w := doJSON(r, http.MethodGet, "/auth/me", "", bad); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with invalid cookie, got %d", w.Code)
	}
}
