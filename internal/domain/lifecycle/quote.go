package lifecycle

import (
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/events"
)

// QuoteInput is an installer's quote form. QuoteID is optional: when set it
// must name the installer's own quote.
type QuoteInput struct {
	QuoteID                   string
	Price                     float64
	PriceWithoutBattery       *float64
	SystemSizeKW              float64
	PanelModelID              string
	InverterModelID           string
	BatteryModelID            string
	Warranty                  string
	EstimatedAnnualProduction float64
}

func (in QuoteInput) validate() error {
	if in.Price <= 0 {
		return invalid("price must be positive")
	}
	if in.PriceWithoutBattery != nil && *in.PriceWithoutBattery <= 0 {
		return invalid("price without battery must be positive")
	}
	if in.SystemSizeKW <= 0 {
		return invalid("system size must be positive")
	}
	if strings.TrimSpace(in.PanelModelID) == "" || strings.TrimSpace(in.InverterModelID) == "" {
		return invalid("panel and inverter models are required")
	}
	if in.EstimatedAnnualProduction < 0 {
		return invalid("estimated annual production cannot be negative")
	}
	return nil
}

// SubmitQuote adds the installer's quote or, when the installer already has
// one on the project, revises it in place keeping its id and position.
func (m *Machine) SubmitQuote(actor entities.Actor, p entities.Project, in QuoteInput) (Transition, error) {
	if !actor.Is(entities.RoleInstaller) {
		return Transition{}, forbidden("only installers submit quotes")
	}
	if !p.Status.AcceptsQuotes() {
		return Transition{}, wrongStatus(OpSubmitQuote, p.Status, entities.ProjectStatusApproved, entities.ProjectStatusContactShared)
	}
	if !actor.ServesCounty(p.Address.County) {
		return Transition{}, ErrNotEligible
	}

	existing, idx, hasQuote := p.QuoteByInstaller(actor.ID)
	if id := strings.TrimSpace(in.QuoteID); id != "" {
		target, _, ok := p.QuoteByID(id)
		if !ok {
			return Transition{}, ErrNotFound
		}
		if target.InstallerID != actor.ID {
			return Transition{}, ErrNotEligible
		}
	}
	if err := in.validate(); err != nil {
		return Transition{}, err
	}

	q := entities.Quote{
		InstallerID:               actor.ID,
		Price:                     in.Price,
		PriceWithoutBattery:       copyFloat(in.PriceWithoutBattery),
		SystemSizeKW:              in.SystemSizeKW,
		PanelModelID:              strings.TrimSpace(in.PanelModelID),
		InverterModelID:           strings.TrimSpace(in.InverterModelID),
		BatteryModelID:            strings.TrimSpace(in.BatteryModelID),
		Warranty:                  strings.TrimSpace(in.Warranty),
		EstimatedAnnualProduction: in.EstimatedAnnualProduction,
		CostBreakdown:             entities.DeriveCostBreakdown(in.Price),
	}

	now := m.now()
	next := p.Clone()
	evType := events.QuoteSubmitted
	if hasQuote {
		q.ID = existing.ID
		next.Quotes[idx] = q
		evType = events.QuoteRevised
	} else {
		q.ID = m.newID()
		next.Quotes = append(next.Quotes, q)
	}
	next.UpdatedAt = now

	ev := events.New(evType, next, actor, now)
	ev.InstallerID = actor.ID
	ev.QuoteID = q.ID
	return Transition{Op: OpSubmitQuote, Project: next, Quote: &q, Events: []events.Event{ev}}, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
