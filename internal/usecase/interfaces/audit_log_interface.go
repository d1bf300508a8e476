package interfaces

import (
	"context"

	"solar_portal/internal/domain/entities"
)

type IAuditLog interface {
	Record(ctx context.Context, entry entities.HistoryEntry) error
	List(ctx context.Context, limit int) ([]entities.HistoryEntry, error)
}
