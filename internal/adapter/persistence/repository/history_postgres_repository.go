package repository

import (
	"context"
	"database/sql"
	"fmt"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"
)

const defaultHistoryLimit = 100

// HistoryPostgresRepository appends audit entries to the history_log table
// created by the embedded migrations.
type HistoryPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IAuditLog = (*HistoryPostgresRepository)(nil)

func NewHistoryPostgresRepository(db *sql.DB) *HistoryPostgresRepository {
	return &HistoryPostgresRepository{db: db}
}

func (r *HistoryPostgresRepository) Record(ctx context.Context, e entities.HistoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history_log (id, occurred_at, actor_id, actor_role, action, target_type, target_id, target_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, e.ID, e.Timestamp.UTC(), e.ActorID, string(e.ActorRole), e.Action, string(e.TargetType), e.TargetID, e.TargetName)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *HistoryPostgresRepository) List(ctx context.Context, limit int) ([]entities.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, occurred_at, actor_id, actor_role, action, target_type, target_id, target_name
		FROM history_log
		ORDER BY occurred_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.HistoryEntry, 0)
	for rows.Next() {
		var (
			e          entities.HistoryEntry
			role       string
			targetType string
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.ActorID, &role, &e.Action, &targetType, &e.TargetID, &e.TargetName); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.ActorRole = entities.Role(role)
		e.TargetType = entities.HistoryTargetType(targetType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
