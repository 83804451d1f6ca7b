// Package service selects the enrichment provider for each lookup and
// absorbs provider failures.
package service

import (
	"context"

	"lead_scoring_backend/internal/enrichment/client"
	"lead_scoring_backend/internal/enrichment/domain"
	"lead_scoring_backend/internal/enrichment/simulator"
	"lead_scoring_backend/platform/logger"
)

// Mode is the provider chosen for a lookup.
type Mode int

const (
	// ModeSimulated uses the deterministic simulator.
	ModeSimulated Mode = iota
	// ModeLive uses the AnyMail Finder API.
	ModeLive
)

func (m Mode) String() string {
	if m == ModeLive {
		return client.Name
	}
	return simulator.Name
}

// Provider produces an enrichment record for an email or fails.
type Provider interface {
	Lookup(ctx context.Context, email string) (*domain.Record, error)
}

// KeySource exposes the provider API key. Its mere presence selects live mode.
type KeySource interface {
	GetAnyMailFinderAPIKey() string
}

// Service routes each lookup to exactly one provider.
type Service struct {
	keys      KeySource
	live      Provider
	simulated Provider
	log       *logger.Logger
}

// New creates the enrichment service. live may be nil when no API key is
// configured; simulated must not be nil.
func New(keys KeySource, live, simulated Provider, log *logger.Logger) *Service {
	return &Service{
		keys:      keys,
		live:      live,
		simulated: simulated,
		log:       log,
	}
}

// Mode reports which provider the next lookup will use.
func (s *Service) Mode() Mode {
	if s.keys != nil && s.keys.GetAnyMailFinderAPIKey() != "" {
		return ModeLive
	}
	return ModeSimulated
}

// Enrich returns the record for email, or nil when the provider failed.
// There is no fallback between providers and no retry. Enrich never
// returns an error: every failure is logged and reported as nil.
func (s *Service) Enrich(ctx context.Context, email string) *domain.Record {
	mode := s.Mode()

	var provider Provider
	switch mode {
	case ModeLive:
		provider = s.live
	default:
		provider = s.simulated
	}

	log := s.log.WithContext(ctx)
	if provider == nil {
		log.Error("enrichment provider not configured", "provider", mode.String())
		return nil
	}

	record, err := provider.Lookup(ctx, email)
	log.EnrichmentEvent(mode.String(), email, err)
	if err != nil {
		return nil
	}
	return record
}
