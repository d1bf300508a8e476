package memory

import (
	"context"
	"slices"

	"solar_portal/internal/domain/entities"
)

// ListByUser walks the per-user index backwards so the newest comes first.
func (r *Notifications) ListByUser(_ context.Context, userID string, limit int) ([]entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := r.s.byUser[userID]
	out := make([]entities.Notification, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, r.s.notifications[ids[i]])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *Notifications) CountUnread(_ context.Context, userID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	unread := 0
	for _, id := range r.s.byUser[userID] {
		if !r.s.notifications[id].IsRead {
			unread++
		}
	}
	return unread, nil
}

func (r *Notifications) GetByID(_ context.Context, id string) (entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.notifications[id], nil
}

func (r *Notifications) MarkRead(_ context.Context, id string) (entities.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return entities.Notification{}, nil
	}
	n.IsRead = true
	r.s.notifications[id] = n
	return n, nil
}

func (r *Notifications) Create(_ context.Context, n entities.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.putNotification(n)
	return nil
}

func (h *History) Record(_ context.Context, e entities.HistoryEntry) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	h.s.history = append(h.s.history, e)
	return nil
}

// List returns the latest entries first.
func (h *History) List(_ context.Context, limit int) ([]entities.HistoryEntry, error) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()
	out := slices.Clone(h.s.history)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
