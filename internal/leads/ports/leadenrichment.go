package ports

import (
	"context"

	"lead_scoring_backend/internal/enrichment/domain"
)

// LeadEnricher resolves company data for a lead's email.
// A nil record means the provider failed; it is never an error.
type LeadEnricher interface {
	Enrich(ctx context.Context, email string) *domain.Record
}
