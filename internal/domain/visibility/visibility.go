// Package visibility decides which parts of a project, quote or installer a
// viewer may see. Every read path that exposes contact data goes through it.
package visibility

import "solar_portal/internal/domain/entities"

// CanViewProject gates the project itself. Deleted projects stay visible to
// admins only.
func CanViewProject(p entities.Project, viewer entities.Actor) bool {
	switch viewer.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleHomeowner:
		return viewer.ID == p.HomeownerID && p.Status != entities.ProjectStatusDeleted
	case entities.RoleInstaller:
		if p.Status == entities.ProjectStatusDeleted {
			return false
		}
		_, bucket := ClassifyForInstaller(p, viewer)
		return bucket
	}
	return false
}

// CanSeeContact reports whether the homeowner's email and phone are visible:
// to the owner, admins and installers the contact was shared with.
func CanSeeContact(p entities.Project, viewer entities.Actor) bool {
	switch viewer.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleHomeowner:
		return viewer.ID == p.HomeownerID
	case entities.RoleInstaller:
		return p.IsSharedWith(viewer.ID)
	}
	return false
}

// CanSeePhone covers an installer's phone number. The installer's email is
// public and not gated.
func CanSeePhone(installer entities.User, viewer entities.Actor) bool {
	if viewer.Role == entities.RoleAdmin {
		return true
	}
	return viewer.Role == entities.RoleInstaller && viewer.ID == installer.ID
}

// CanSeeQuoteDetails covers the price, breakdown and equipment of a quote.
func CanSeeQuoteDetails(p entities.Project, q entities.Quote, viewer entities.Actor) bool {
	switch viewer.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleHomeowner:
		return viewer.ID == p.HomeownerID
	case entities.RoleInstaller:
		return viewer.ID == q.InstallerID
	}
	return false
}

// VisibleQuotes filters the project's quotes down to what viewer may see,
// keeping submission order. Installers only ever see their own quote.
func VisibleQuotes(p entities.Project, viewer entities.Actor) []entities.Quote {
	out := make([]entities.Quote, 0, len(p.Quotes))
	for _, q := range p.Quotes {
		if CanSeeQuoteDetails(p, q, viewer) {
			out = append(out, q)
		}
	}
	return out
}

type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeOpen Outcome = "open"
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// QuoteOutcome tells an installer how its quote ended up. OutcomeLost is the
// "another installer won" state.
func QuoteOutcome(p entities.Project, installerID string) Outcome {
	if _, _, ok := p.QuoteByInstaller(installerID); !ok {
		if p.WinningInstallerID == installerID && installerID != "" {
			return OutcomeWon
		}
		return OutcomeNone
	}
	switch {
	case p.Status != entities.ProjectStatusSigned:
		return OutcomeOpen
	case p.WinningInstallerID == installerID:
		return OutcomeWon
	default:
		return OutcomeLost
	}
}

// Bucket is the installer dashboard tab a project lands in.
type Bucket string

const (
	BucketNewLead        Bucket = "new_lead"
	BucketSubmittedQuote Bucket = "submitted_quote"
	BucketSharedContact  Bucket = "shared_contact"
	BucketSignedDeal     Bucket = "signed_deal"
	BucketLostDeal       Bucket = "lost_deal"
)

// ClassifyForInstaller places a project on the installer's dashboard. The
// second result is false when the project does not belong on it at all.
//
// Order matters: a signed deal beats a shared contact, which beats a plain
// submitted quote. Leads are only offered in the installer's counties while
// the project still accepts quotes.
func ClassifyForInstaller(p entities.Project, installer entities.Actor) (Bucket, bool) {
	if installer.Role != entities.RoleInstaller || p.Status == entities.ProjectStatusDeleted {
		return "", false
	}
	_, _, hasQuote := p.QuoteByInstaller(installer.ID)

	switch {
	case p.Status == entities.ProjectStatusSigned:
		if p.WinningInstallerID == installer.ID {
			return BucketSignedDeal, true
		}
		if hasQuote {
			return BucketLostDeal, true
		}
		return "", false
	case p.Status == entities.ProjectStatusContactShared && p.IsSharedWith(installer.ID):
		return BucketSharedContact, true
	case hasQuote:
		return BucketSubmittedQuote, true
	case p.Status.AcceptsQuotes() && installer.ServesCounty(p.Address.County):
		return BucketNewLead, true
	}
	return "", false
}
