// Package service runs the lead submission pipeline: enrich, score,
// persist, announce.
package service

import (
	"context"
	"errors"
	"strings"

	"lead_scoring_backend/internal/enrichment/domain"
	"lead_scoring_backend/internal/events"
	"lead_scoring_backend/internal/leads/ports"
	"lead_scoring_backend/internal/leads/repository"
	"lead_scoring_backend/internal/leads/scoring"
	"lead_scoring_backend/internal/leads/transport"
	"lead_scoring_backend/platform/apperr"
	"lead_scoring_backend/platform/logger"
)

const msgDuplicateEmail = "A lead with this email already exists"

// Service handles lead creation and listing.
type Service struct {
	repo     repository.LeadsRepository
	enricher ports.LeadEnricher
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new leads service.
func New(repo repository.LeadsRepository, enricher ports.LeadEnricher, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		enricher: enricher,
		eventBus: eventBus,
		log:      log,
	}
}

// Qualify enriches email and scores the result. A failed lookup is scored
// as an empty record, so a score is always produced.
func (s *Service) Qualify(ctx context.Context, email string, hasWebsite bool) (domain.Record, bool, scoring.Result) {
	var rec domain.Record
	enriched := false
	if s.enricher != nil {
		if found := s.enricher.Enrich(ctx, email); found != nil {
			rec = *found
			enriched = true
		}
	}
	return rec, enriched, scoring.Calculate(hasWebsite, rec)
}

// Create stores a new lead after enriching and scoring it.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadSummary, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	website := domain.Optional(strings.TrimSpace(req.Website))
	if name == "" || email == "" {
		return transport.LeadSummary{}, apperr.Validation("Name and email are required")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return transport.LeadSummary{}, apperr.Conflict(msgDuplicateEmail)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.log.WithContext(ctx).DatabaseError("leads.GetByEmail", err)
		return transport.LeadSummary{}, apperr.Wrap(apperr.KindInternal, "failed to check for existing lead", err).WithOp("leads.Create")
	}

	rec, enriched, result := s.Qualify(ctx, email, website != nil)

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		Name:        name,
		Email:       email,
		Website:     website,
		CompanyName: domain.Optional(domain.Value(rec.CompanyName)),
		CompanySize: domain.Optional(domain.Value(rec.CompanySize)),
		Industry:    domain.Optional(domain.Value(rec.Industry)),
		Country:     domain.Optional(domain.Value(rec.Country)),
		Score:       result.Score,
		Qualified:   result.Qualified,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return transport.LeadSummary{}, apperr.Conflict(msgDuplicateEmail)
		}
		s.log.WithContext(ctx).DatabaseError("leads.Create", err)
		return transport.LeadSummary{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err).WithOp("leads.Create")
	}

	s.log.WithContext(ctx).Info("lead created",
		"leadId", lead.ID,
		"score", lead.Score,
		"qualified", lead.Qualified,
		"enriched", enriched,
	)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.LeadCreated{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			Name:      lead.Name,
			Email:     lead.Email,
			Score:     lead.Score,
			Qualified: lead.Qualified,
			Enriched:  enriched,
		})
	}

	return toSummary(lead), nil
}

// List returns stored leads for the dashboard.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadsListResponse, error) {
	params := repository.ListParams{
		QualifiedOnly: req.Qualified == "true",
		SortBy:        repository.SortByScore,
		Ascending:     req.Order == "asc",
	}
	if req.Sort == string(repository.SortByCreatedAt) {
		params.SortBy = repository.SortByCreatedAt
	}

	leads, err := s.repo.List(ctx, params)
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("leads.List", err)
		return transport.LeadsListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err).WithOp("leads.List")
	}

	items := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, toResponse(lead))
	}
	return transport.LeadsListResponse{Leads: items}, nil
}

func toSummary(lead repository.Lead) transport.LeadSummary {
	return transport.LeadSummary{
		ID:        lead.ID.String(),
		Name:      lead.Name,
		Email:     lead.Email,
		Score:     lead.Score,
		Qualified: lead.Qualified,
	}
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:          lead.ID.String(),
		Name:        lead.Name,
		Email:       lead.Email,
		Website:     lead.Website,
		CompanyName: lead.CompanyName,
		CompanySize: lead.CompanySize,
		Industry:    lead.Industry,
		Country:     lead.Country,
		Score:       lead.Score,
		Qualified:   lead.Qualified,
		CreatedAt:   lead.CreatedAt,
		UpdatedAt:   lead.UpdatedAt,
	}
}
