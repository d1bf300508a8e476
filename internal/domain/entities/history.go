package entities

import "time"

type HistoryTargetType string

const (
	HistoryTargetProject HistoryTargetType = "project"
	HistoryTargetSetting HistoryTargetType = "setting"
	HistoryTargetFinance HistoryTargetType = "finance"
)

// HistoryEntry is one line of the audit trail.
type HistoryEntry struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	ActorID    string            `json:"actor_id"`
	ActorRole  Role              `json:"actor_role"`
	Action     string            `json:"action"`
	TargetType HistoryTargetType `json:"target_type"`
	TargetID   string            `json:"target_id"`
	TargetName string            `json:"target_name"`
}
