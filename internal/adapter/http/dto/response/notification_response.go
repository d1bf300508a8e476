package response

import (
	"time"

	"solar_portal/internal/domain/entities"
)

type NotificationResponse struct {
	ID            string         `json:"id"`
	MessageKey    string         `json:"message_key"`
	MessageParams map[string]any `json:"message_params"`
	Link          string         `json:"link"`
	IsRead        bool           `json:"is_read"`
	CreatedAt     time.Time      `json:"created_at"`
}

type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	params := n.MessageParams
	if params == nil {
		params = map[string]any{}
	}
	return NotificationResponse{
		ID:            n.ID,
		MessageKey:    n.MessageKey,
		MessageParams: params,
		Link:          n.Link,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification, unread int) NotificationListResponse {
	items := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		items = append(items, FromNotification(n))
	}
	return NotificationListResponse{Items: items, Unread: unread}
}

type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	TargetName string    `json:"target_name"`
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:         e.ID,
			Timestamp:  e.Timestamp,
			ActorID:    e.ActorID,
			ActorRole:  string(e.ActorRole),
			Action:     e.Action,
			TargetType: string(e.TargetType),
			TargetID:   e.TargetID,
			TargetName: e.TargetName,
		})
	}
	return out
}
