package models

import "time"

// Thread sender roles.
const (
	SenderResident = "resident"
	SenderStaff    = "staff"
)

// ThreadMessage is one entry in a report's append-only conversation.
type ThreadMessage struct {
	ID         string    `json:"_id"`
	ReportID   string    `json:"reportId"`
	SenderRole string    `json:"senderRole"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReportDetail is the backend's view of a submitted report.
type ReportDetail struct {
	ID           string    `json:"id"`
	IncidentType string    `json:"incidentType,omitempty"`
	Details      string    `json:"details,omitempty"`
	Status       string    `json:"status,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}
