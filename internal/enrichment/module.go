// Package enrichment provides the composition root for lead enrichment.
package enrichment

import (
	"lead_scoring_backend/internal/enrichment/client"
	"lead_scoring_backend/internal/enrichment/service"
	"lead_scoring_backend/internal/enrichment/simulator"
	"lead_scoring_backend/platform/config"
	"lead_scoring_backend/platform/logger"
)

// Module wires the enrichment service.
type Module struct {
	service *service.Service
}

// NewModule creates the enrichment module. The live client is only built
// when an API key is configured.
func NewModule(cfg config.EnrichmentConfig, log *logger.Logger) (*Module, error) {
	var opts []simulator.Option
	if !cfg.GetEnrichmentSimulatedLatency() {
		opts = append(opts, simulator.WithoutLatency())
	}
	sim, err := simulator.New(log, opts...)
	if err != nil {
		return nil, err
	}

	var live service.Provider
	if cfg.GetAnyMailFinderAPIKey() != "" {
		live = client.New(cfg.GetAnyMailFinderAPIKey(), cfg.GetAnyMailFinderBaseURL(), cfg.GetEnrichmentTimeout(), log)
	}

	svc := service.New(cfg, live, sim, log)
	log.Info("enrichment provider selected", "provider", svc.Mode().String())
	return &Module{service: svc}, nil
}

// Service returns the enrichment service.
func (m *Module) Service() *service.Service {
	return m.service
}
