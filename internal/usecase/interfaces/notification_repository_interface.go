package interfaces

import (
	"context"

	"solar_portal/internal/domain/entities"
)

type INotificationRepository interface {
	// ListByUser returns newest first; limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	Create(ctx context.Context, n entities.Notification) error
}
