package usecase

import (
	"context"
	"testing"

	"solar_portal/internal/adapter/persistence/memory"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/events"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

var (
	adminActor = entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
	ownerActor = entities.Actor{ID: "homeowner-1", Role: entities.RoleHomeowner}
	travisA    = entities.Actor{ID: "installer-1", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis", "Williamson"}}
	travisB    = entities.Actor{ID: "installer-2", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis", "Hays"}}
	harris     = entities.Actor{ID: "installer-3", Role: entities.RoleInstaller, ServiceCounties: []string{"Harris"}}
)

type fixture struct {
	store    *memory.Store
	projects *ProjectUseCase
	finance  *FinancialUseCase
}

// newFixture wires the use cases over a fresh in-memory store seeded with one
// admin, one homeowner and three installers.
func newFixture(t *testing.T, opts ...ProjectOption) *fixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	users := store.Users()
	seed := []entities.User{
		entities.NewAdmin("admin-1", "Ops", "ops@solar.example", entities.AdminPermissions{CanLoginAs: true}),
		entities.NewHomeowner("homeowner-1", "Dana Reyes", entities.ContactInfo{Email: "dana@example.com", Phone: "512-555-0101"}),
		entities.NewInstaller("installer-1", "Bright Solar", entities.ContactInfo{Email: "hi@bright.example", Phone: "512-555-0200"}, []string{"Travis", "Williamson"}),
		entities.NewInstaller("installer-2", "Sunny Co", entities.ContactInfo{Email: "hi@sunny.example", Phone: "512-555-0300"}, []string{"Travis", "Hays"}),
		entities.NewInstaller("installer-3", "Gulf Power", entities.ContactInfo{Email: "hi@gulf.example"}, []string{"Harris"}),
	}
	for _, u := range seed {
		require.NoError(t, users.Upsert(ctx, u))
	}

	log := logger.NewTestLogger(t)
	dispatcher := NewNotificationDispatcher(users, log)
	return &fixture{
		store:    store,
		projects: NewProjectUseCase(store.Projects(), users, store.Settings(), dispatcher, log, opts...),
		finance:  NewFinancialUseCase(store.Records(), store.Payments(), store.Settings(), users, nil, log),
	}
}

func travisDraft() lifecycle.ProjectDraft {
	return lifecycle.ProjectDraft{
		Address:    entities.Address{Street: "1 Main St", City: "Austin", County: "Travis"},
		EnergyBill: 210,
		RoofTypeID: "roof-metal",
	}
}

func quoteFor(price float64) lifecycle.QuoteInput {
	return lifecycle.QuoteInput{
		Price:           price,
		SystemSizeKW:    8.4,
		PanelModelID:    "panel-rec-alpha-405",
		InverterModelID: "inv-enphase-iq8",
		Warranty:        "25 years",
	}
}

// approved submits and approves a Travis project.
func (f *fixture) approved(t *testing.T) entities.Project {
	t.Helper()
	ctx := context.Background()
	p, err := f.projects.Submit(ctx, ownerActor, travisDraft())
	require.NoError(t, err)
	p, err = f.projects.Approve(ctx, adminActor, p.ID, "")
	require.NoError(t, err)
	return p
}

func (f *fixture) inbox(t *testing.T, userID string) []entities.Notification {
	t.Helper()
	items, err := f.store.Notifications().ListByUser(context.Background(), userID, 0)
	require.NoError(t, err)
	return items
}

func messageKeys(ns []entities.Notification) []string {
	keys := make([]string, 0, len(ns))
	for _, n := range ns {
		keys = append(keys, n.MessageKey)
	}
	return keys
}

type nopDispatcher struct{}

func (nopDispatcher) Build(context.Context, []events.Event) []entities.Notification { return nil }
