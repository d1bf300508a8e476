package entities

import "time"

// Notification is a stored alert; MessageKey and MessageParams are rendered
// by the client, Link deep-links back into the project, quote or chat.
type Notification struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	MessageKey    string         `json:"message_key"`
	MessageParams map[string]any `json:"message_params"`
	Link          string         `json:"link"`
	IsRead        bool           `json:"is_read"`
	CreatedAt     time.Time      `json:"created_at"`
}
