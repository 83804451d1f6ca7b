// Package events defines the domain events of the lead system and
// re-exports the platform bus so modules import a single package.
package events

import (
	"lead_scoring_backend/platform/events"

	"github.com/google/uuid"
)

type (
	InMemoryBus = events.InMemoryBus
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published after a new lead has been scored and stored.
type LeadCreated struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Score     int       `json:"score"`
	Qualified bool      `json:"qualified"`
	Enriched  bool      `json:"enriched"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }
