package response

import (
	"testing"
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/visibility"
)

func signedProject() entities.Project {
	signedAt := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)
	return entities.Project{
		ID:          "p-1",
		HomeownerID: "homeowner-1",
		Address:     entities.Address{Street: "1 Main St", City: "Austin", County: "Travis"},
		Status:      entities.ProjectStatusSigned,
		Quotes: []entities.Quote{
			{ID: "q-1", InstallerID: "installer-1", Price: 50000, CostBreakdown: entities.DeriveCostBreakdown(50000)},
			{ID: "q-2", InstallerID: "installer-2", Price: 45000, CostBreakdown: entities.DeriveCostBreakdown(45000)},
		},
		SharedWithInstallerIDs: []string{"installer-2"},
		WinningInstallerID:     "installer-2",
		FinalPrice:             44000,
		SignedAt:               &signedAt,
		Version:                6,
	}
}

func TestFromProject_LosingInstaller(t *testing.T) {
	viewer := entities.Actor{ID: "installer-1", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis"}}
	res := FromProject(signedProject(), viewer)

	if len(res.Quotes) != 1 || res.Quotes[0].ID != "q-1" {
		t.Fatalf("expected only the viewer's quote, got %+v", res.Quotes)
	}
	if res.QuoteCount != 2 {
		t.Fatalf("expected quote count 2, got %d", res.QuoteCount)
	}
	if res.Outcome != string(visibility.OutcomeLost) {
		t.Fatalf("expected lost, got %q", res.Outcome)
	}
	if res.WinningInstallerID != "" || res.FinalPrice != 0 || res.SharedWithInstallerIDs != nil {
		t.Fatalf("loser must not see the deal: %+v", res)
	}
	if res.ContactShared {
		t.Fatalf("contact was never shared with installer-1")
	}
}

func TestFromProject_WinningInstaller(t *testing.T) {
	viewer := entities.Actor{ID: "installer-2", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis"}}
	res := FromProject(signedProject(), viewer)

	if res.Outcome != string(visibility.OutcomeWon) || res.FinalPrice != 44000 || res.WinningInstallerID != "installer-2" {
		t.Fatalf("winner should see its deal: %+v", res)
	}
	if !res.ContactShared {
		t.Fatalf("winner should see the contact")
	}
	if res.Quotes[0].CostBreakdown.Labor != 13500 {
		t.Fatalf("unexpected breakdown: %+v", res.Quotes[0].CostBreakdown)
	}
}

func TestFromProject_OwnerAndAdmin(t *testing.T) {
	for _, viewer := range []entities.Actor{
		{ID: "homeowner-1", Role: entities.RoleHomeowner},
		{ID: "admin-1", Role: entities.RoleAdmin},
	} {
		res := FromProject(signedProject(), viewer)
		if len(res.Quotes) != 2 || len(res.SharedWithInstallerIDs) != 1 || res.FinalPrice != 44000 {
			t.Fatalf("%s should see the whole project: %+v", viewer.Role, res)
		}
		if res.Outcome != "" {
			t.Fatalf("outcome is installer-only, got %q for %s", res.Outcome, viewer.Role)
		}
	}
}

func TestFromProject_SharedSetIsCopied(t *testing.T) {
	p := signedProject()
	res := FromProject(p, entities.Actor{ID: "admin-1", Role: entities.RoleAdmin})
	res.SharedWithInstallerIDs[0] = "mutated"
	if p.SharedWithInstallerIDs[0] != "installer-2" {
		t.Fatalf("response aliases the project slice")
	}
}

func TestFromDashboard_EmptyTabs(t *testing.T) {
	res := FromDashboard(nil, entities.Actor{ID: "installer-1", Role: entities.RoleInstaller})
	if res.NewLeads == nil || res.SubmittedQuote == nil || res.SharedContacts == nil || res.SignedDeals == nil || res.LostDeals == nil {
		t.Fatalf("every tab must be a non-nil slice: %+v", res)
	}
}
