package events

import (
	"time"

	"solar_portal/internal/domain/entities"
)

// Type names a domain event emitted by a lifecycle transition. The values
// double as the SNS message attribute "event_type".
type Type string

const (
	ProjectSubmitted Type = "project.submitted"
	ProjectApproved  Type = "project.approved"
	ProjectHeld      Type = "project.held"
	ProjectRestored  Type = "project.restored"
	ProjectDeleted   Type = "project.deleted"
	ProjectEdited    Type = "project.edited"
	ContactShared    Type = "project.contact_shared"
	QuoteSubmitted   Type = "quote.submitted"
	QuoteRevised     Type = "quote.revised"
	DealSigned       Type = "deal.signed"
	ReviewSubmitted  Type = "review.submitted"
)

// Event is the single emission point of a transition. The dispatcher turns
// events into notifications; the state machine never talks to a sink.
type Event struct {
	Type        Type          `json:"type"`
	ProjectID   string        `json:"project_id"`
	HomeownerID string        `json:"homeowner_id"`
	InstallerID string        `json:"installer_id,omitempty"`
	QuoteID     string        `json:"quote_id,omitempty"`
	County      string        `json:"county,omitempty"`
	City        string        `json:"city,omitempty"`
	FinalPrice  float64       `json:"final_price,omitempty"`
	ActorID     string        `json:"actor_id"`
	ActorRole   entities.Role `json:"actor_role"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// New fills the project-scoped fields shared by every event.
func New(t Type, p entities.Project, actor entities.Actor, at time.Time) Event {
	return Event{
		Type:        t,
		ProjectID:   p.ID,
		HomeownerID: p.HomeownerID,
		County:      p.Address.County,
		City:        p.Address.City,
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		OccurredAt:  at,
	}
}

// Notifies reports whether the event produces at least one notification.
func (t Type) Notifies() bool {
	switch t {
	case ProjectSubmitted, ProjectApproved, ContactShared, QuoteSubmitted, QuoteRevised, DealSigned, ReviewSubmitted:
		return true
	}
	return false
}
