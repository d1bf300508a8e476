// Package lifecycle owns project status transitions. Every transition is a
// pure function of (actor, project, input): it returns the next project state
// plus the domain events it produced and, for signing, the financial record.
// Nothing here performs I/O.
package lifecycle

import (
	"strings"
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/events"
	"solar_portal/internal/domain/finance"

	"github.com/google/uuid"
)

// Operation names used in TransitionError and history entries.
const (
	OpSubmit       = "submit"
	OpApprove      = "approve"
	OpHold         = "hold"
	OpRestore      = "restore"
	OpDelete       = "delete"
	OpEdit         = "edit"
	OpShareContact = "share_contact"
	OpSubmitQuote  = "submit_quote"
	OpAcceptOffer  = "accept_offer"
	OpMarkAsSigned = "mark_as_signed"
	OpLeaveReview  = "leave_review"
)

// Transition is the outcome of a successful transition. Noop is set when the
// call was valid but changed nothing (repeat contact share).
type Transition struct {
	Op      string
	Project entities.Project
	Quote   *entities.Quote
	Record  *entities.FinancialRecord
	Events  []events.Event
	Noop    bool
}

type Machine struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Machine)

func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(m *Machine) { m.newID = newID }
}

func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ProjectDraft is the homeowner's submission form.
type ProjectDraft struct {
	Address      entities.Address
	EnergyBill   float64
	RoofTypeID   string
	Notes        string
	WantsBattery bool
	PhotoRef     string
}

// ProjectEdit carries the admin-editable fields; nil means unchanged.
type ProjectEdit struct {
	Address      *entities.Address
	EnergyBill   *float64
	RoofTypeID   *string
	Notes        *string
	WantsBattery *bool
	PhotoRef     *string
}

func (e ProjectEdit) Empty() bool {
	return e.Address == nil && e.EnergyBill == nil && e.RoofTypeID == nil &&
		e.Notes == nil && e.WantsBattery == nil && e.PhotoRef == nil
}

func (m *Machine) Submit(actor entities.Actor, draft ProjectDraft) (Transition, error) {
	if !actor.Is(entities.RoleHomeowner) {
		return Transition{}, forbidden("only homeowners submit projects")
	}
	if err := validateAddress(draft.Address); err != nil {
		return Transition{}, err
	}
	if draft.EnergyBill <= 0 {
		return Transition{}, invalid("energy bill must be positive")
	}
	if strings.TrimSpace(draft.RoofTypeID) == "" {
		return Transition{}, invalid("roof type is required")
	}

	now := m.now()
	p := entities.Project{
		ID:                     m.newID(),
		HomeownerID:            actor.ID,
		Address:                trimAddress(draft.Address),
		EnergyBill:             draft.EnergyBill,
		RoofTypeID:             strings.TrimSpace(draft.RoofTypeID),
		Notes:                  draft.Notes,
		WantsBattery:           draft.WantsBattery,
		PhotoRef:               strings.TrimSpace(draft.PhotoRef),
		Status:                 entities.ProjectStatusPendingApproval,
		Quotes:                 []entities.Quote{},
		SharedWithInstallerIDs: []string{},
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	return Transition{
		Op:      OpSubmit,
		Project: p,
		Events:  []events.Event{events.New(events.ProjectSubmitted, p, actor, now)},
	}, nil
}

// Approve releases a project to the installers serving its county. photoRef
// is optional.
func (m *Machine) Approve(actor entities.Actor, p entities.Project, photoRef string) (Transition, error) {
	if !actor.Is(entities.RoleAdmin) {
		return Transition{}, forbidden("only admins approve projects")
	}
	if p.Status != entities.ProjectStatusPendingApproval {
		return Transition{}, wrongStatus(OpApprove, p.Status, entities.ProjectStatusPendingApproval)
	}

	next := p.Clone()
	next.Status = entities.ProjectStatusApproved
	if ref := strings.TrimSpace(photoRef); ref != "" {
		next.PhotoRef = ref
	}
	return m.single(OpApprove, next, actor, events.ProjectApproved), nil
}

func (m *Machine) Hold(actor entities.Actor, p entities.Project) (Transition, error) {
	if !actor.Is(entities.RoleAdmin) {
		return Transition{}, forbidden("only admins hold projects")
	}
	if p.Status != entities.ProjectStatusApproved && p.Status != entities.ProjectStatusContactShared {
		return Transition{}, wrongStatus(OpHold, p.Status, entities.ProjectStatusApproved, entities.ProjectStatusContactShared)
	}

	next := p.Clone()
	next.Status = entities.ProjectStatusOnHold
	return m.single(OpHold, next, actor, events.ProjectHeld), nil
}

// Restore always returns to APPROVED; the shared-installer set is kept, and
// the next share, new or repeated, moves the project back to CONTACT_SHARED.
func (m *Machine) Restore(actor entities.Actor, p entities.Project) (Transition, error) {
	if !actor.Is(entities.RoleAdmin) {
		return Transition{}, forbidden("only admins restore projects")
	}
	if p.Status != entities.ProjectStatusOnHold {
		return Transition{}, wrongStatus(OpRestore, p.Status, entities.ProjectStatusOnHold)
	}

	next := p.Clone()
	next.Status = entities.ProjectStatusApproved
	return m.single(OpRestore, next, actor, events.ProjectRestored), nil
}

func (m *Machine) Delete(actor entities.Actor, p entities.Project) (Transition, error) {
	if !actor.Is(entities.RoleAdmin) {
		return Transition{}, forbidden("only admins delete projects")
	}
	if p.Status.IsTerminal() {
		return Transition{}, wrongStatus(OpDelete, p.Status, nonTerminal...)
	}

	next := p.Clone()
	next.Status = entities.ProjectStatusDeleted
	return m.single(OpDelete, next, actor, events.ProjectDeleted), nil
}

// Edit changes descriptive fields only. Terminal projects are frozen.
func (m *Machine) Edit(actor entities.Actor, p entities.Project, edit ProjectEdit) (Transition, error) {
	if !actor.Is(entities.RoleAdmin) {
		return Transition{}, forbidden("only admins edit projects")
	}
	if p.Status.IsTerminal() {
		return Transition{}, wrongStatus(OpEdit, p.Status, nonTerminal...)
	}
	if edit.Empty() {
		return Transition{}, invalid("no fields to edit")
	}

	next := p.Clone()
	if edit.Address != nil {
		if err := validateAddress(*edit.Address); err != nil {
			return Transition{}, err
		}
		next.Address = trimAddress(*edit.Address)
	}
	if edit.EnergyBill != nil {
		if *edit.EnergyBill <= 0 {
			return Transition{}, invalid("energy bill must be positive")
		}
		next.EnergyBill = *edit.EnergyBill
	}
	if edit.RoofTypeID != nil {
		if strings.TrimSpace(*edit.RoofTypeID) == "" {
			return Transition{}, invalid("roof type is required")
		}
		next.RoofTypeID = strings.TrimSpace(*edit.RoofTypeID)
	}
	if edit.Notes != nil {
		next.Notes = *edit.Notes
	}
	if edit.WantsBattery != nil {
		next.WantsBattery = *edit.WantsBattery
	}
	if edit.PhotoRef != nil {
		next.PhotoRef = strings.TrimSpace(*edit.PhotoRef)
	}
	return m.single(OpEdit, next, actor, events.ProjectEdited), nil
}

// ShareContact grants one installer access to the homeowner's contact
// details. Sharing with an installer already in the set is a no-op, except
// on a restored project where it reopens CONTACT_SHARED without notifying.
func (m *Machine) ShareContact(actor entities.Actor, p entities.Project, installerID string) (Transition, error) {
	if err := requireOwner(actor, p); err != nil {
		return Transition{}, err
	}
	installerID = strings.TrimSpace(installerID)
	if installerID == "" {
		return Transition{}, invalid("installer id is required")
	}
	if p.Status == entities.ProjectStatusSigned {
		return Transition{}, ErrAlreadySigned
	}
	if !p.Status.AcceptsQuotes() {
		return Transition{}, wrongStatus(OpShareContact, p.Status, entities.ProjectStatusApproved, entities.ProjectStatusContactShared)
	}
	if p.IsSharedWith(installerID) {
		if p.Status == entities.ProjectStatusContactShared {
			return Transition{Op: OpShareContact, Project: p.Clone(), Noop: true}, nil
		}
		next := p.Clone()
		next.Status = entities.ProjectStatusContactShared
		next.UpdatedAt = m.now()
		return Transition{Op: OpShareContact, Project: next}, nil
	}

	now := m.now()
	next := p.Clone()
	next.SharedWithInstallerIDs = append(next.SharedWithInstallerIDs, installerID)
	next.Status = entities.ProjectStatusContactShared
	next.UpdatedAt = now

	ev := events.New(events.ContactShared, next, actor, now)
	ev.InstallerID = installerID
	return Transition{Op: OpShareContact, Project: next, Events: []events.Event{ev}}, nil
}

// AcceptOffer is the homeowner's path to SIGNED: the chosen quote's price
// becomes the final price.
func (m *Machine) AcceptOffer(actor entities.Actor, p entities.Project, quoteID string, rate float64) (Transition, error) {
	if err := requireOwner(actor, p); err != nil {
		return Transition{}, err
	}
	if p.Status == entities.ProjectStatusSigned {
		return Transition{}, ErrAlreadySigned
	}
	if !p.Status.AcceptsQuotes() {
		return Transition{}, wrongStatus(OpAcceptOffer, p.Status, entities.ProjectStatusApproved, entities.ProjectStatusContactShared)
	}
	q, _, ok := p.QuoteByID(strings.TrimSpace(quoteID))
	if !ok {
		return Transition{}, ErrNotFound
	}
	return m.sign(OpAcceptOffer, actor, p, q.InstallerID, q.ID, q.Price, rate)
}

// MarkAsSigned is the installer's path to SIGNED once the homeowner has
// shared contact with it, using the negotiated final price.
func (m *Machine) MarkAsSigned(actor entities.Actor, p entities.Project, finalPrice float64, rate float64) (Transition, error) {
	if !actor.Is(entities.RoleInstaller) {
		return Transition{}, forbidden("only installers mark deals as signed")
	}
	if p.Status == entities.ProjectStatusSigned {
		return Transition{}, ErrAlreadySigned
	}
	if p.Status != entities.ProjectStatusContactShared {
		return Transition{}, wrongStatus(OpMarkAsSigned, p.Status, entities.ProjectStatusContactShared)
	}
	if !p.IsSharedWith(actor.ID) {
		return Transition{}, ErrNotEligible
	}
	if finalPrice <= 0 {
		return Transition{}, invalid("final price must be positive")
	}

	quoteID := ""
	if q, _, ok := p.QuoteByInstaller(actor.ID); ok {
		quoteID = q.ID
	}
	return m.sign(OpMarkAsSigned, actor, p, actor.ID, quoteID, finalPrice, rate)
}

func (m *Machine) sign(op string, actor entities.Actor, p entities.Project, winner, quoteID string, finalPrice, rate float64) (Transition, error) {
	now := m.now()
	next := p.Clone()
	next.Status = entities.ProjectStatusSigned
	next.WinningInstallerID = winner
	next.FinalPrice = finalPrice
	next.SignedAt = &now
	next.UpdatedAt = now
	if !next.IsSharedWith(winner) {
		next.SharedWithInstallerIDs = append(next.SharedWithInstallerIDs, winner)
	}

	record, err := finance.RecordSigning(next, finalPrice, winner, rate, now)
	if err != nil {
		return Transition{}, invalid("%v", err)
	}

	ev := events.New(events.DealSigned, next, actor, now)
	ev.InstallerID = winner
	ev.QuoteID = quoteID
	ev.FinalPrice = finalPrice
	return Transition{Op: op, Project: next, Record: &record, Events: []events.Event{ev}}, nil
}

// LeaveReview records the homeowner's single review of the winning installer.
func (m *Machine) LeaveReview(actor entities.Actor, p entities.Project, rating int, comment string) (Transition, error) {
	if err := requireOwner(actor, p); err != nil {
		return Transition{}, err
	}
	if p.Status != entities.ProjectStatusSigned {
		return Transition{}, wrongStatus(OpLeaveReview, p.Status, entities.ProjectStatusSigned)
	}
	if p.ReviewSubmitted {
		return Transition{}, ErrAlreadyReviewed
	}
	if rating < 1 || rating > 5 {
		return Transition{}, invalid("rating must be between 1 and 5")
	}

	now := m.now()
	next := p.Clone()
	next.ReviewSubmitted = true
	next.Review = &entities.Review{
		ID:          m.newID(),
		ProjectID:   p.ID,
		InstallerID: p.WinningInstallerID,
		HomeownerID: p.HomeownerID,
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		CreatedAt:   now,
	}
	next.UpdatedAt = now

	ev := events.New(events.ReviewSubmitted, next, actor, now)
	ev.InstallerID = p.WinningInstallerID
	return Transition{Op: OpLeaveReview, Project: next, Events: []events.Event{ev}}, nil
}

func (m *Machine) single(op string, next entities.Project, actor entities.Actor, t events.Type) Transition {
	now := m.now()
	next.UpdatedAt = now
	return Transition{Op: op, Project: next, Events: []events.Event{events.New(t, next, actor, now)}}
}

var nonTerminal = []entities.ProjectStatus{
	entities.ProjectStatusPendingApproval,
	entities.ProjectStatusApproved,
	entities.ProjectStatusContactShared,
	entities.ProjectStatusOnHold,
}

func requireOwner(actor entities.Actor, p entities.Project) error {
	if !actor.Is(entities.RoleHomeowner) || actor.ID != p.HomeownerID {
		return forbidden("only the owning homeowner may do this")
	}
	return nil
}

func validateAddress(a entities.Address) error {
	fields := []struct{ name, value string }{
		{"street", a.Street},
		{"city", a.City},
		{"county", a.County},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return invalid("address %s is required", f.name)
		}
	}
	return nil
}

func trimAddress(a entities.Address) entities.Address {
	return entities.Address{
		Street: strings.TrimSpace(a.Street),
		City:   strings.TrimSpace(a.City),
		County: strings.TrimSpace(a.County),
	}
}
