package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_CommitTransition(t *testing.T) {
	ctx := context.Background()
	projects := NewStore().Projects()
	p := entities.Project{ID: "p-1", HomeownerID: "h-1", Status: entities.ProjectStatusPendingApproval}

	t.Run("create requires absence", func(t *testing.T) {
		saved, err := projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: p})
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)

		_, err = projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: p})
		assert.True(t, errors.Is(err, interfaces.ErrVersionConflict))
	})

	t.Run("stale version rejected", func(t *testing.T) {
		next := p
		next.Status = entities.ProjectStatusApproved
		saved, err := projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: next, ExpectedVersion: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), saved.Version)

		_, err = projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: next, ExpectedVersion: 1})
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

		got, err := projects.GetByID(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectStatusApproved, got.Status)
	})

	t.Run("missing project", func(t *testing.T) {
		got, err := projects.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestProjects_ConcurrentCommitsSameVersion(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	projects := store.Projects()
	p := entities.Project{ID: "p-1", HomeownerID: "h-1", Status: entities.ProjectStatusContactShared}
	_, err := projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: p})
	require.NoError(t, err)

	const writers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			next := p
			next.Status = entities.ProjectStatusSigned
			next.WinningInstallerID = fmt.Sprintf("i-%d", i)
			rec := &entities.FinancialRecord{ID: "fin-p-1", ProjectID: "p-1", InstallerID: next.WinningInstallerID}
			_, err := projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: next, ExpectedVersion: 1, Record: rec})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, interfaces.ErrVersionConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, writers-1, conflicts)

	got, err := projects.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	records, err := store.Records().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, got.WinningInstallerID, records[0].InstallerID)
}

func TestProjects_CommitTransitionWritesBundle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	p := entities.Project{ID: "p-1", Status: entities.ProjectStatusSigned}
	rec := &entities.FinancialRecord{ID: "fin-p-1", ProjectID: "p-1", Status: entities.FinancialRecordStatusPending}
	notes := []entities.Notification{
		{ID: "n-1", UserID: "admin-1", MessageKey: "adminDealSigned"},
		{ID: "n-2", UserID: "installer-1", MessageKey: "installerDealWon"},
	}

	_, err := store.Projects().CommitTransition(ctx, interfaces.TransitionBundle{Project: p, Record: rec, Notifications: notes})
	require.NoError(t, err)

	got, err := store.Records().GetByProjectID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "fin-p-1", got.ID)

	inbox, err := store.Notifications().ListByUser(ctx, "installer-1", 0)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "installerDealWon", inbox[0].MessageKey)

	// a second record for the same id must not be written
	p2 := entities.Project{ID: "p-2"}
	_, err = store.Projects().CommitTransition(ctx, interfaces.TransitionBundle{Project: p2, Record: rec})
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	missing, _ := store.Projects().GetByID(ctx, "p-2")
	assert.Empty(t, missing.ID)
}

func TestProjects_ListFilters(t *testing.T) {
	ctx := context.Background()
	projects := NewStore().Projects()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []entities.Project{
		{ID: "a", HomeownerID: "h-1", Status: entities.ProjectStatusApproved, Address: entities.Address{County: "Travis"}, CreatedAt: base},
		{ID: "b", HomeownerID: "h-2", Status: entities.ProjectStatusPendingApproval, Address: entities.Address{County: "Travis"}, CreatedAt: base.Add(time.Hour)},
		{ID: "c", HomeownerID: "h-1", Status: entities.ProjectStatusContactShared, Address: entities.Address{County: "Hays"},
			SharedWithInstallerIDs: []string{"i-1"}, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, p := range seed {
		_, err := projects.CommitTransition(ctx, interfaces.TransitionBundle{Project: p})
		require.NoError(t, err)
	}

	all, err := projects.List(ctx, interfaces.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	travis, _ := projects.List(ctx, interfaces.ProjectFilter{County: "Travis", Statuses: []entities.ProjectStatus{entities.ProjectStatusApproved}})
	require.Len(t, travis, 1)
	assert.Equal(t, "a", travis[0].ID)

	owned, _ := projects.List(ctx, interfaces.ProjectFilter{HomeownerID: "h-1"})
	assert.Len(t, owned, 2)

	shared, _ := projects.List(ctx, interfaces.ProjectFilter{InstallerID: "i-1"})
	require.Len(t, shared, 1)
	assert.Equal(t, "c", shared[0].ID)
}

func TestRecords_UpdateStatusIsConditional(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	rec := entities.FinancialRecord{ID: "fin-p-1", ProjectID: "p-1", Status: entities.FinancialRecordStatusPending}
	_, err := store.Projects().CommitTransition(ctx, interfaces.TransitionBundle{Project: entities.Project{ID: "p-1"}, Record: &rec})
	require.NoError(t, err)

	paid := rec
	paid.Status = entities.FinancialRecordStatusPaid
	got, err := store.Records().UpdateStatus(ctx, paid, entities.FinancialRecordStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entities.FinancialRecordStatusPaid, got.Status)

	again, err := store.Records().UpdateStatus(ctx, paid, entities.FinancialRecordStatusPending)
	require.NoError(t, err)
	assert.Empty(t, again.ID)

	pending, _ := store.Records().List(ctx, entities.FinancialRecordStatusPending)
	assert.Empty(t, pending)
}

func TestNotifications_ListAndMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Notifications()
	for _, id := range []string{"n-1", "n-2", "n-3"} {
		require.NoError(t, repo.Create(ctx, entities.Notification{ID: id, UserID: "u-1"}))
	}

	latest, err := repo.ListByUser(ctx, "u-1", 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "n-3", latest[0].ID)
	assert.Equal(t, "n-2", latest[1].ID)

	n, err := repo.MarkRead(ctx, "n-1")
	require.NoError(t, err)
	assert.True(t, n.IsRead)

	missing, err := repo.MarkRead(ctx, "n-9")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestHistory_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewStore().History()
	for _, action := range []string{"approve", "hold", "restore"} {
		require.NoError(t, h.Record(ctx, entities.HistoryEntry{Action: action}))
	}
	got, err := h.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "restore", got[0].Action)
	assert.Equal(t, "hold", got[1].Action)
}

func TestUsers_Directory(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()
	require.NoError(t, users.Upsert(ctx, entities.NewInstaller("i-2", "Sunny Co", entities.ContactInfo{}, []string{"Hays"})))
	require.NoError(t, users.Upsert(ctx, entities.NewInstaller("i-1", "Bright Co", entities.ContactInfo{}, []string{"Travis", "Hays"})))
	require.NoError(t, users.Upsert(ctx, entities.NewHomeowner("h-1", "Dana", entities.ContactInfo{})))

	hays, err := users.ListInstallersByCounty(ctx, "Hays")
	require.NoError(t, err)
	require.Len(t, hays, 2)
	assert.Equal(t, "i-1", hays[0].ID)

	homeowners, _ := users.ListByRole(ctx, entities.RoleHomeowner)
	assert.Len(t, homeowners, 1)

	rate := NewStore().Settings()
	require.NoError(t, rate.SetCommissionRate(ctx, 0.15))
	got, _ := rate.GetCommissionRate(ctx)
	assert.Equal(t, 0.15, got)
}
