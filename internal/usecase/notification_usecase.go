package usecase

import (
	"context"
	"fmt"
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound = fmt.Errorf("notification %w", lifecycle.ErrNotFound)
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type INotificationUseCase interface {
	ListForUser(ctx context.Context, actor entities.Actor, limit int) ([]entities.Notification, int, error)
	MarkRead(ctx context.Context, actor entities.Actor, notificationID string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListForUser returns the actor's notifications newest first together with
// the unread count across all of them, not just the returned page.
func (u *NotificationUseCase) ListForUser(ctx context.Context, actor entities.Actor, limit int) ([]entities.Notification, int, error) {
	switch {
	case limit <= 0:
		limit = defaultNotificationLimit
	case limit > maxNotificationLimit:
		limit = maxNotificationLimit
	}
	items, err := u.repo.ListByUser(ctx, actor.ID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := u.repo.CountUnread(ctx, actor.ID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

// MarkRead is idempotent. Other users' notifications look missing.
func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.Actor, notificationID string) (entities.Notification, error) {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	n, err := u.repo.GetByID(ctx, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" || n.UserID != actor.ID {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.IsRead {
		return n, nil
	}
	updated, err := u.repo.MarkRead(ctx, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}
