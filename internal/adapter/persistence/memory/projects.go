package memory

import (
	"context"
	"slices"
	"sort"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"
)

func (r *Projects) GetByID(_ context.Context, id string) (entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return entities.Project{}, nil
	}
	return p.Clone(), nil
}

func (r *Projects) List(_ context.Context, f interfaces.ProjectFilter) ([]entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Project, 0)
	for _, p := range r.s.projects {
		if matches(p, f) {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func matches(p entities.Project, f interfaces.ProjectFilter) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, p.Status) {
		return false
	}
	if f.County != "" && p.Address.County != f.County {
		return false
	}
	if f.HomeownerID != "" && p.HomeownerID != f.HomeownerID {
		return false
	}
	if f.InstallerID != "" {
		_, _, quoted := p.QuoteByInstaller(f.InstallerID)
		if !quoted && !p.IsSharedWith(f.InstallerID) && p.WinningInstallerID != f.InstallerID {
			return false
		}
	}
	return true
}

// CommitTransition checks the version, then writes project, record and
// notifications while holding the write lock.
func (r *Projects) CommitTransition(_ context.Context, b interfaces.TransitionBundle) (entities.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, exists := r.s.projects[b.Project.ID]
	switch {
	case b.ExpectedVersion == 0 && exists:
		return entities.Project{}, interfaces.ErrVersionConflict
	case b.ExpectedVersion != 0 && (!exists || current.Version != b.ExpectedVersion):
		return entities.Project{}, interfaces.ErrVersionConflict
	}
	if b.Record != nil {
		if _, dup := r.s.records[b.Record.ID]; dup {
			return entities.Project{}, interfaces.ErrVersionConflict
		}
	}

	next := b.Project.Clone()
	next.Version = b.ExpectedVersion + 1
	r.s.projects[next.ID] = next
	if b.Record != nil {
		r.s.records[b.Record.ID] = *b.Record
	}
	for _, n := range b.Notifications {
		r.s.putNotification(n)
	}
	return next.Clone(), nil
}

func (s *Store) putNotification(n entities.Notification) {
	if _, exists := s.notifications[n.ID]; !exists {
		s.byUser[n.UserID] = append(s.byUser[n.UserID], n.ID)
	}
	s.notifications[n.ID] = n
}
