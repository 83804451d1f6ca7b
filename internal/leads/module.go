// Package leads provides the lead qualification bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"

	"lead_scoring_backend/internal/events"
	apphttp "lead_scoring_backend/internal/http"
	"lead_scoring_backend/internal/leads/handler"
	"lead_scoring_backend/internal/leads/ports"
	"lead_scoring_backend/internal/leads/repository"
	"lead_scoring_backend/internal/leads/service"
	"lead_scoring_backend/platform/config"
	"lead_scoring_backend/platform/httpkit"
	"lead_scoring_backend/platform/logger"
	"lead_scoring_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler     *handler.Handler
	submitLimit *httpkit.IPRateLimiter
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, enricher ports.LeadEnricher, eventBus events.Bus, val *validator.Validator, cfg config.RateLimitConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, enricher, eventBus, log)

	// Surface qualified leads to sales
	eventBus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.LeadCreated)
		if !ok || !e.Qualified {
			return nil
		}
		log.WithContext(ctx).Info("qualified lead ready for sales",
			"leadId", e.LeadID,
			"name", e.Name,
			"score", e.Score,
			"enriched", e.Enriched,
		)
		return nil
	}))

	return &Module{
		handler:     handler.New(svc, val),
		submitLimit: httpkit.NewPerMinuteLimiter(cfg.GetLeadSubmitRatePerMinute(), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts leads routes on the provided router context.
// Submission is public and rate limited; listing is for the dashboard only.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads", m.submitLimit.RateLimit(), m.handler.Create)
	ctx.Protected.GET("/leads", m.handler.List)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
