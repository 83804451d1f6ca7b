package handler

import (
	"context"
	"strings"

	"lead_scoring_backend/internal/leads/transport"
	"lead_scoring_backend/platform/httpkit"
	"lead_scoring_backend/platform/sanitize"
	"lead_scoring_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON      = "Invalid JSON body"
	msgInvalidQuery     = "Invalid query parameters"
	msgValidationFailed = "Validation failed"
)

// LeadService is the subset of the leads service the handler needs.
type LeadService interface {
	Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadSummary, error)
	List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadsListResponse, error)
}

type Handler struct {
	svc LeadService
	val *validator.Validator
}

func New(svc LeadService, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Create handles a public lead submission.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.BadRequest(c, msgInvalidJSON, nil)
		return
	}
	req.Name = sanitize.Text(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Website = strings.TrimSpace(req.Website)

	if err := h.val.Struct(req); err != nil {
		httpkit.BadRequest(c, msgValidationFailed, validator.Details(err))
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.CreateLeadResponse{Success: true, Lead: lead})
}

// List returns stored leads for the dashboard.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.BadRequest(c, msgInvalidQuery, nil)
		return
	}

	resp, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
