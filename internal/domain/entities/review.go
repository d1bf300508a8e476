package entities

import "time"

type Review struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	InstallerID string    `json:"installer_id"`
	HomeownerID string    `json:"homeowner_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}
