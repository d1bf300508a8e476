package usecase

import (
	"context"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/usecase/interfaces"
)

const defaultHistoryLimit = 100

type IHistoryUseCase interface {
	List(ctx context.Context, actor entities.Actor, limit int) ([]entities.HistoryEntry, error)
}

// HistoryUseCase exposes the audit trail to admins.
type HistoryUseCase struct {
	audit interfaces.IAuditLog
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(audit interfaces.IAuditLog) *HistoryUseCase {
	return &HistoryUseCase{audit: audit}
}

func (u *HistoryUseCase) List(ctx context.Context, actor entities.Actor, limit int) ([]entities.HistoryEntry, error) {
	if !actor.Is(entities.RoleAdmin) {
		return nil, lifecycle.ErrForbidden
	}
	if u.audit == nil {
		return []entities.HistoryEntry{}, nil
	}
	if limit <= 0 || limit > 1000 {
		limit = defaultHistoryLimit
	}
	return u.audit.List(ctx, limit)
}
