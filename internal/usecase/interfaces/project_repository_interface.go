package interfaces

import (
	"context"
	"errors"

	"solar_portal/internal/domain/entities"
)

// ErrVersionConflict is returned by CommitTransition when the stored project
// no longer has the expected version, or when a record for the project
// already exists.
var ErrVersionConflict = errors.New("project version conflict")

// ProjectFilter narrows List. Empty fields do not filter. InstallerID matches
// projects the installer quoted on, was shared with, or won.
type ProjectFilter struct {
	Statuses    []entities.ProjectStatus
	County      string
	HomeownerID string
	InstallerID string
}

// TransitionBundle is everything one lifecycle transition writes. It is
// persisted as a unit: either all of it is visible afterwards or none of it.
//
// ExpectedVersion 0 creates the project; otherwise the stored version must
// match. Record is set only for signing.
type TransitionBundle struct {
	Project         entities.Project
	ExpectedVersion int64
	Record          *entities.FinancialRecord
	Notifications   []entities.Notification
}

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]entities.Project, error)
	// CommitTransition returns the stored project with its new version.
	CommitTransition(ctx context.Context, bundle TransitionBundle) (entities.Project, error)
}
