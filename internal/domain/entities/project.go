package entities

import (
	"slices"
	"time"
)

// ProjectStatus is the lifecycle state of a project.
//
//	PENDING_APPROVAL -> APPROVED -> CONTACT_SHARED -> SIGNED
//	APPROVED|CONTACT_SHARED <-> ON_HOLD (restore returns to APPROVED)
//	any non-terminal -> DELETED
type ProjectStatus string

const (
	ProjectStatusPendingApproval ProjectStatus = "pending_approval"
	ProjectStatusApproved        ProjectStatus = "approved"
	ProjectStatusContactShared   ProjectStatus = "contact_shared"
	ProjectStatusOnHold          ProjectStatus = "on_hold"
	ProjectStatusSigned          ProjectStatus = "signed"
	ProjectStatusDeleted         ProjectStatus = "deleted"
)

func (s ProjectStatus) IsTerminal() bool {
	return s == ProjectStatusSigned || s == ProjectStatusDeleted
}

// AcceptsQuotes reports whether installers may submit or revise quotes.
func (s ProjectStatus) AcceptsQuotes() bool {
	return s == ProjectStatusApproved || s == ProjectStatusContactShared
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPendingApproval, ProjectStatusApproved, ProjectStatusContactShared,
		ProjectStatusOnHold, ProjectStatusSigned, ProjectStatusDeleted:
		return true
	}
	return false
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	County string `json:"county"`
}

// Project is a homeowner's request for quotes.
//
// Invariants kept by the lifecycle package:
//   - WinningInstallerID != "" iff Status == SIGNED
//   - SharedWithInstallerIDs contains WinningInstallerID once set
//   - at most one quote per installer; Quotes keeps submission order
//
// Version is the optimistic-lock counter; storage bumps it on every commit.
type Project struct {
	ID           string  `json:"id"`
	HomeownerID  string  `json:"homeowner_id"`
	Address      Address `json:"address"`
	EnergyBill   float64 `json:"energy_bill"`
	RoofTypeID   string  `json:"roof_type_id"`
	Notes        string  `json:"notes"`
	WantsBattery bool    `json:"wants_battery"`
	PhotoRef     string  `json:"photo_ref,omitempty"`

	Status                 ProjectStatus `json:"status"`
	Quotes                 []Quote       `json:"quotes"`
	SharedWithInstallerIDs []string      `json:"shared_with_installer_ids"`
	WinningInstallerID     string        `json:"winning_installer_id,omitempty"`
	FinalPrice             float64       `json:"final_price,omitempty"`
	SignedAt               *time.Time    `json:"signed_at,omitempty"`
	ReviewSubmitted        bool          `json:"review_submitted"`
	Review                 *Review       `json:"review,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so transitions never alias the caller's slices.
func (p Project) Clone() Project {
	out := p
	out.Quotes = slices.Clone(p.Quotes)
	out.SharedWithInstallerIDs = slices.Clone(p.SharedWithInstallerIDs)
	if p.SignedAt != nil {
		t := *p.SignedAt
		out.SignedAt = &t
	}
	if p.Review != nil {
		r := *p.Review
		out.Review = &r
	}
	return out
}

func (p Project) QuoteByID(id string) (Quote, int, bool) {
	for i, q := range p.Quotes {
		if q.ID == id {
			return q, i, true
		}
	}
	return Quote{}, -1, false
}

func (p Project) QuoteByInstaller(installerID string) (Quote, int, bool) {
	for i, q := range p.Quotes {
		if q.InstallerID == installerID {
			return q, i, true
		}
	}
	return Quote{}, -1, false
}

func (p Project) IsSharedWith(installerID string) bool {
	return slices.Contains(p.SharedWithInstallerIDs, installerID)
}

// QuoteInstallerIDs lists the installers that have quoted, in submission order.
func (p Project) QuoteInstallerIDs() []string {
	ids := make([]string, 0, len(p.Quotes))
	for _, q := range p.Quotes {
		ids = append(ids, q.InstallerID)
	}
	return ids
}
