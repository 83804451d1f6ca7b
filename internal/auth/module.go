// Package auth provides the dashboard authentication bounded context module.
// This file defines the module that encapsulates all auth setup and route registration.
package auth

import (
	"lead_scoring_backend/internal/auth/handler"
	"lead_scoring_backend/internal/auth/service"
	apphttp "lead_scoring_backend/internal/http"
	"lead_scoring_backend/platform/config"
	"lead_scoring_backend/platform/logger"
	"lead_scoring_backend/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(cfg config.DashboardConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	svc, err := service.New(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Module{
		handler: handler.New(svc, val, cfg.GetAuthCookieSecure()),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public auth routes with stricter rate limiting
	authGroup := ctx.V1.Group("/auth")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)

	ctx.Protected.GET("/auth/me", m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
