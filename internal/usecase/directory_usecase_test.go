package usecase

import (
	"context"
	"testing"

	"solar_portal/internal/adapter/persistence/memory"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) *DirectoryUseCase {
	t.Helper()
	ctx := context.Background()
	users := memory.NewStore().Users()
	held := entities.NewHomeowner("homeowner-held", "Held", entities.ContactInfo{})
	held.Status = entities.UserStatusOnHold
	gone := entities.NewInstaller("installer-gone", "Gone Solar", entities.ContactInfo{Phone: "1"}, []string{"Travis"})
	gone.Status = entities.UserStatusDeleted
	for _, u := range []entities.User{
		entities.NewAdmin("admin-1", "Ops", "ops@solar.example", entities.AdminPermissions{}),
		entities.NewHomeowner("homeowner-1", "Dana Reyes", entities.ContactInfo{Phone: "512-555-0101"}),
		entities.NewInstaller("installer-1", "Bright Solar", entities.ContactInfo{Email: "hi@bright.example", Phone: "512-555-0200"}, []string{"Travis"}),
		entities.NewInstaller("installer-2", "Sunny Co", entities.ContactInfo{Email: "hi@sunny.example", Phone: "512-555-0300"}, []string{"Hays"}),
		held,
		gone,
	} {
		require.NoError(t, users.Upsert(ctx, u))
	}
	return NewDirectoryUseCase(users)
}

func TestDirectoryUseCase_Resolve(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	u, err := uc.Resolve(ctx, " installer-1 ")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleInstaller, u.Actor().Role)
	assert.Equal(t, []string{"Travis"}, u.Actor().ServiceCounties)

	_, err = uc.Resolve(ctx, "homeowner-held")
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
	_, err = uc.Resolve(ctx, "installer-gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = uc.Resolve(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = uc.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDirectoryUseCase_PhoneGate(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		viewer entities.Actor
		phone  string
	}{
		{name: "admin", viewer: adminActor, phone: "512-555-0200"},
		{name: "self", viewer: travisA, phone: "512-555-0200"},
		{name: "other installer", viewer: travisB, phone: ""},
		{name: "homeowner", viewer: ownerActor, phone: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := uc.GetInstaller(ctx, tt.viewer, "installer-1")
			require.NoError(t, err)
			assert.Equal(t, tt.phone, inst.Contact.Phone)
			assert.Equal(t, "hi@bright.example", inst.Contact.Email)
		})
	}

	_, err := uc.GetInstaller(ctx, adminActor, "homeowner-1")
	assert.ErrorIs(t, err, ErrInstallerNotFound)
	_, err = uc.GetInstaller(ctx, adminActor, "installer-gone")
	assert.ErrorIs(t, err, ErrInstallerNotFound)
}

func TestDirectoryUseCase_ListInstallers(t *testing.T) {
	uc := newDirectory(t)

	list, err := uc.ListInstallers(context.Background(), ownerActor)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, inst := range list {
		assert.Empty(t, inst.Contact.Phone, inst.ID)
	}
}
