package interfaces

import (
	"context"

	"solar_portal/internal/domain/entities"
)

// IUserDirectory is the identity provider as seen by the core: it resolves
// actors and lists notification recipients.
type IUserDirectory interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
	ListInstallersByCounty(ctx context.Context, county string) ([]entities.User, error)
	Upsert(ctx context.Context, u entities.User) error
}
