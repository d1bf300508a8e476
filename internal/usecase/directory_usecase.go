package usecase

import (
	"context"
	"fmt"
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/domain/visibility"
	"solar_portal/internal/usecase/interfaces"
)

var ErrUserNotFound = fmt.Errorf("user %w", lifecycle.ErrNotFound)

// IDirectoryUseCase serves user profiles with the phone gate applied.
type IDirectoryUseCase interface {
	Resolve(ctx context.Context, userID string) (entities.User, error)
	GetInstaller(ctx context.Context, viewer entities.Actor, installerID string) (entities.User, error)
	ListInstallers(ctx context.Context, viewer entities.Actor) ([]entities.User, error)
}

type DirectoryUseCase struct {
	users interfaces.IUserDirectory
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(users interfaces.IUserDirectory) *DirectoryUseCase {
	return &DirectoryUseCase{users: users}
}

// Resolve loads the caller's own record; deleted and held accounts cannot act.
func (u *DirectoryUseCase) Resolve(ctx context.Context, userID string) (entities.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" || user.Status == entities.UserStatusDeleted {
		return entities.User{}, ErrUserNotFound
	}
	if user.Status == entities.UserStatusOnHold {
		return entities.User{}, lifecycle.ErrForbidden
	}
	return user, nil
}

func (u *DirectoryUseCase) GetInstaller(ctx context.Context, viewer entities.Actor, installerID string) (entities.User, error) {
	installerID = strings.TrimSpace(installerID)
	if installerID == "" {
		return entities.User{}, ErrInstallerNotFound
	}
	inst, err := u.users.GetByID(ctx, installerID)
	if err != nil {
		return entities.User{}, err
	}
	if inst.ID == "" || entities.RoleOf(inst) != entities.RoleInstaller || inst.Status == entities.UserStatusDeleted {
		return entities.User{}, ErrInstallerNotFound
	}
	return redactInstaller(inst, viewer), nil
}

func (u *DirectoryUseCase) ListInstallers(ctx context.Context, viewer entities.Actor) ([]entities.User, error) {
	all, err := u.users.ListByRole(ctx, entities.RoleInstaller)
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(all))
	for _, inst := range all {
		if inst.Status == entities.UserStatusDeleted {
			continue
		}
		out = append(out, redactInstaller(inst, viewer))
	}
	return out, nil
}

func redactInstaller(inst entities.User, viewer entities.Actor) entities.User {
	if !visibility.CanSeePhone(inst, viewer) {
		inst.Contact.Phone = ""
	}
	return inst
}
