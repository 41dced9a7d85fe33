package models

import (
	"time"
)

// StatusChange представляет запись журнала изменения статуса обращения офицером
type StatusChange struct {
	ID           int64     `json:"id"`
	IncidentID   string    `json:"incident_id"`
	FromStatus   Status    `json:"from_status"`
	ToStatus     Status    `json:"to_status"`
	Notes        string    `json:"notes,omitempty"`
	OfficerBadge string    `json:"officer_badge"`
	ChangedAt    time.Time `json:"changed_at"`
}
