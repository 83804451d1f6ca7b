package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lead_scoring_backend/internal/leads/transport"
	"lead_scoring_backend/platform/apperr"
	"lead_scoring_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type stubService struct {
	createReq  *transport.CreateLeadRequest
	createErr  error
	listReq    *transport.ListLeadsRequest
	listResult transport.LeadsListResponse
}

func (s *stubService) Create(_ context.Context, req transport.CreateLeadRequest) (transport.LeadSummary, error) {
	s.createReq = &req
	if s.createErr != nil {
		return transport.LeadSummary{}, s.createErr
	}
	return transport.LeadSummary{ID: "lead-1", Name: req.Name, Email: req.Email, Score: 30, Qualified: true}, nil
}

func (s *stubService) List(_ context.Context, req transport.ListLeadsRequest) (transport.LeadsListResponse, error) {
	s.listReq = &req
	return s.listResult, nil
}

func newRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, validator.New())
	r := gin.New()
	r.POST("/leads", h.Create)
	r.GET("/leads", h.List)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReturnsCreatedLead(t *testing.T) {
	svc := &stubService{}
	w := post(newRouter(svc), `{"name":"  <b>Jane</b> ","email":"jane@acme.com","website":"https://acme.com"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp transport.CreateLeadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Lead.Score != 30 || !resp.Lead.Qualified {
		t.Fatalf("unexpected response %+v", resp)
	}
	if svc.createReq.Name != "Jane" {
		t.Fatalf("expected sanitized name, got %q", svc.createReq.Name)
	}
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	svc := &stubService{}
	w := post(newRouter(svc), `{"name":`)

	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), msgInvalidJSON) {
		t.Fatalf("expected 400 %q, got %d: %s", msgInvalidJSON, w.Code, w.Body.String())
	}
	if svc.createReq != nil {
		t.Fatal("service must not be called")
	}
}

func TestCreateReportsFieldErrors(t *testing.T) {
	svc := &stubService{}
	w := post(newRouter(svc), `{"name":"   ","email":"not-an-email","website":"acme"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp struct {
		Error   string                 `json:"error"`
		Details []validator.FieldError `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != msgValidationFailed {
		t.Fatalf("expected %q, got %q", msgValidationFailed, resp.Error)
	}

	fields := map[string]string{}
	for _, d := range resp.Details {
		fields[strings.Join(d.Path, ".")] = d.Message
	}
	for _, field := range []string{"name", "email", "website"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("expected an error for %s, got %+v", field, resp.Details)
		}
	}
	if fields["email"] != "Must be a valid email address" {
		t.Fatalf("unexpected email message %q", fields["email"])
	}
	if svc.createReq != nil {
		t.Fatal("service must not be called")
	}
}

func TestCreateAllowsMissingWebsite(t *testing.T) {
	w := post(newRouter(&stubService{}), `{"name":"Jane","email":"jane@acme.com","website":""}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateMapsConflict(t *testing.T) {
	svc := &stubService{createErr: apperr.Conflict("A lead with this email already exists")}
	w := post(newRouter(svc), `{"name":"Jane","email":"jane@acme.com"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestListPassesQuery(t *testing.T) {
	svc := &stubService{listResult: transport.LeadsListResponse{Leads: []transport.LeadResponse{}}}
	r := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/leads?qualified=true&sort=createdAt&order=asc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := *svc.listReq; got.Qualified != "true" || got.Sort != "createdAt" || got.Order != "asc" {
		t.Fatalf("unexpected query %+v", got)
	}
	if strings.TrimSpace(w.Body.String()) != `{"leads":[]}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
