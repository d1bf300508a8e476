package usecase

import (
	"context"
	"testing"

	"solar_portal/internal/adapter/persistence/memory"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	mock_interfaces "solar_portal/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	audit := mock_interfaces.NewMockIAuditLog(ctrl)
	uc := NewHistoryUseCase(audit)

	entries := []entities.HistoryEntry{{ID: "h-2", Action: lifecycle.OpApprove}, {ID: "h-1", Action: lifecycle.OpSubmit}}
	audit.EXPECT().List(gomock.Any(), defaultHistoryLimit).Return(entries, nil)
	audit.EXPECT().List(gomock.Any(), 10).Return(entries[:1], nil)

	got, err := uc.List(context.Background(), adminActor, 5000)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	got, err = uc.List(context.Background(), adminActor, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.List(context.Background(), travisA, 10)
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
}

func TestHistoryUseCase_RecordsTransitions(t *testing.T) {
	audit := memory.NewStore().History()
	f := newFixture(t, WithAuditLog(audit))
	f.approved(t)

	entries, err := NewHistoryUseCase(audit).List(context.Background(), adminActor, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, lifecycle.OpApprove, entries[0].Action)
	assert.Equal(t, "admin-1", entries[0].ActorID)
	assert.Equal(t, entities.HistoryTargetProject, entries[0].TargetType)
	assert.Equal(t, "1 Main St, Austin", entries[0].TargetName)
	assert.Equal(t, lifecycle.OpSubmit, entries[1].Action)
}

func TestHistoryUseCase_NoAuditLog(t *testing.T) {
	got, err := NewHistoryUseCase(nil).List(context.Background(), adminActor, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
