package handler

import (
	"context"
	"net/http"
	"time"

	"lead_scoring_backend/internal/auth/transport"
	"lead_scoring_backend/platform/httpkit"
	"lead_scoring_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON      = "Invalid JSON body"
	msgValidationFailed = "Username and password are required"
	cookiePath          = "/"
)

// Authenticator is the subset of the auth service the handler needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	TokenTTL() time.Duration
}

type Handler struct {
	svc          Authenticator
	val          *validator.Validator
	cookieSecure bool
}

func New(svc Authenticator, val *validator.Validator, cookieSecure bool) *Handler {
	return &Handler{svc: svc, val: val, cookieSecure: cookieSecure}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.BadRequest(c, msgInvalidJSON, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.BadRequest(c, msgValidationFailed, validator.Details(err))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if httpkit.HandleError(c, err) {
		return
	}

	h.setSessionCookie(c, token, int(h.svc.TokenTTL()/time.Second))
	httpkit.OK(c, transport.LoginResponse{Success: true})
}

func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	httpkit.OK(c, transport.LoginResponse{Success: true})
}

func (h *Handler) Me(c *gin.Context) {
	username, ok := httpkit.Username(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	httpkit.OK(c, transport.MeResponse{Username: username})
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		httpkit.AuthCookieName,
		value,
		maxAge,
		cookiePath,
		"",
		h.cookieSecure,
		true,
	)
}
