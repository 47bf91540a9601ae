package models

import "time"

// Notification types the backend emits.
const (
	NotificationAlert  = "alert"
	NotificationReport = "report"
	NotificationSystem = "system"
)

type NotificationItem struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Time       time.Time      `json:"time"`
	Unread     bool           `json:"unread"`
	IncidentID string         `json:"incidentId,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}
