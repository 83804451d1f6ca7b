package repository

import (
	"context"
)

// LeadReader provides read-only access to lead data.
type LeadReader interface {
	GetByEmail(ctx context.Context, email string) (Lead, error)
	List(ctx context.Context, params ListParams) ([]Lead, error)
}

// LeadWriter provides write operations for lead management.
type LeadWriter interface {
	Create(ctx context.Context, params CreateLeadParams) (Lead, error)
}

// LeadsRepository is the full store used by the leads service.
type LeadsRepository interface {
	LeadReader
	LeadWriter
}

// Compile-time check that Repository implements LeadsRepository.
var _ LeadsRepository = (*Repository)(nil)
