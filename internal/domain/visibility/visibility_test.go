package visibility

import (
	"testing"

	"solar_portal/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

var (
	owner    = entities.Actor{ID: "h1", Role: entities.RoleHomeowner}
	other    = entities.Actor{ID: "h2", Role: entities.RoleHomeowner}
	admin    = entities.Actor{ID: "a1", Role: entities.RoleAdmin}
	instA    = entities.Actor{ID: "iA", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis"}}
	instB    = entities.Actor{ID: "iB", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis"}}
	instFar  = entities.Actor{ID: "iF", Role: entities.RoleInstaller, ServiceCounties: []string{"Harris"}}
	instNone = entities.Actor{ID: "iN", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis"}}
)

func project(status entities.ProjectStatus) entities.Project {
	return entities.Project{
		ID:          "p1",
		HomeownerID: "h1",
		Address:     entities.Address{Street: "1 Main", City: "Austin", County: "Travis"},
		Status:      status,
		Quotes: []entities.Quote{
			{ID: "q1", InstallerID: "iA", Price: 60000},
			{ID: "q2", InstallerID: "iB", Price: 65000},
		},
	}
}

func TestCanSeeContact(t *testing.T) {
	p := project(entities.ProjectStatusContactShared)
	p.SharedWithInstallerIDs = []string{"iA"}

	assert.True(t, CanSeeContact(p, owner))
	assert.True(t, CanSeeContact(p, admin))
	assert.True(t, CanSeeContact(p, instA))
	assert.False(t, CanSeeContact(p, instB))
	assert.False(t, CanSeeContact(p, other))
}

func TestCanSeePhone(t *testing.T) {
	installer := entities.NewInstaller("iA", "SunCo", entities.ContactInfo{Email: "sun@co", Phone: "555"}, []string{"Travis"})

	assert.True(t, CanSeePhone(installer, instA))
	assert.True(t, CanSeePhone(installer, admin))
	assert.False(t, CanSeePhone(installer, instB))
	assert.False(t, CanSeePhone(installer, owner))
}

func TestVisibleQuotes(t *testing.T) {
	p := project(entities.ProjectStatusApproved)

	assert.Len(t, VisibleQuotes(p, owner), 2)
	assert.Len(t, VisibleQuotes(p, admin), 2)
	assert.Empty(t, VisibleQuotes(p, other))

	own := VisibleQuotes(p, instB)
	if assert.Len(t, own, 1) {
		assert.Equal(t, "q2", own[0].ID)
	}
	assert.Empty(t, VisibleQuotes(p, instNone))
}

func TestQuoteOutcome(t *testing.T) {
	open := project(entities.ProjectStatusContactShared)
	assert.Equal(t, OutcomeOpen, QuoteOutcome(open, "iA"))
	assert.Equal(t, OutcomeNone, QuoteOutcome(open, "iN"))

	signed := project(entities.ProjectStatusSigned)
	signed.WinningInstallerID = "iA"
	signed.SharedWithInstallerIDs = []string{"iA"}
	assert.Equal(t, OutcomeWon, QuoteOutcome(signed, "iA"))
	assert.Equal(t, OutcomeLost, QuoteOutcome(signed, "iB"))
}

func TestClassifyForInstaller(t *testing.T) {
	tests := []struct {
		name    string
		project func() entities.Project
		viewer  entities.Actor
		want    Bucket
		listed  bool
	}{
		{
			name:    "new lead in county",
			project: func() entities.Project { return project(entities.ProjectStatusApproved) },
			viewer:  instNone,
			want:    BucketNewLead,
			listed:  true,
		},
		{
			name:    "not a lead outside county",
			project: func() entities.Project { return project(entities.ProjectStatusApproved) },
			viewer:  instFar,
		},
		{
			name:    "pending project is hidden",
			project: func() entities.Project { return project(entities.ProjectStatusPendingApproval) },
			viewer:  instNone,
		},
		{
			name:    "held project is not a lead",
			project: func() entities.Project { return project(entities.ProjectStatusOnHold) },
			viewer:  instNone,
		},
		{
			name:    "submitted quote",
			project: func() entities.Project { return project(entities.ProjectStatusApproved) },
			viewer:  instA,
			want:    BucketSubmittedQuote,
			listed:  true,
		},
		{
			name: "shared contact",
			project: func() entities.Project {
				p := project(entities.ProjectStatusContactShared)
				p.SharedWithInstallerIDs = []string{"iA"}
				return p
			},
			viewer: instA,
			want:   BucketSharedContact,
			listed: true,
		},
		{
			name: "signed deal",
			project: func() entities.Project {
				p := project(entities.ProjectStatusSigned)
				p.WinningInstallerID = "iA"
				p.SharedWithInstallerIDs = []string{"iA"}
				return p
			},
			viewer: instA,
			want:   BucketSignedDeal,
			listed: true,
		},
		{
			name: "lost deal",
			project: func() entities.Project {
				p := project(entities.ProjectStatusSigned)
				p.WinningInstallerID = "iA"
				return p
			},
			viewer: instB,
			want:   BucketLostDeal,
			listed: true,
		},
		{
			name:    "deleted never listed",
			project: func() entities.Project { return project(entities.ProjectStatusDeleted) },
			viewer:  instA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, listed := ClassifyForInstaller(tt.project(), tt.viewer)
			assert.Equal(t, tt.listed, listed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanViewProject(t *testing.T) {
	p := project(entities.ProjectStatusApproved)
	assert.True(t, CanViewProject(p, owner))
	assert.False(t, CanViewProject(p, other))
	assert.True(t, CanViewProject(p, instNone))
	assert.False(t, CanViewProject(p, instFar))

	deleted := project(entities.ProjectStatusDeleted)
	assert.True(t, CanViewProject(deleted, admin))
	assert.False(t, CanViewProject(deleted, owner))
	assert.False(t, CanViewProject(deleted, instA))
}
