package models

import "time"

// Incident submission modes.
const (
	ModeComplain  = "complain"
	ModeEmergency = "emergency"
)

// MaxIncidentPhotos caps the number of photos attached to one submission.
const MaxIncidentPhotos = 3

// IncidentDraft accumulates the incident form. It lives only in memory and is
// discarded once the submission is confirmed or the flow is abandoned.
type IncidentDraft struct {
	Mode         string   `json:"mode"`
	IncidentType string   `json:"incidentType,omitempty"`
	Details      string   `json:"details"`
	WitnessName  string   `json:"witnessName,omitempty"`
	WitnessType  string   `json:"witnessType,omitempty"`
	DateStr      string   `json:"date"`
	TimeStr      string   `json:"time"`
	LocationStr  string   `json:"location"`
	Photos       []string `json:"photos"`
}

// AddPhoto appends a photo URI, ignoring anything past the cap. The URI is
// stored verbatim: one platform's picker returns URIs the upload layer must
// receive unmodified. Reports whether the photo was accepted.
func (d *IncidentDraft) AddPhoto(uri string) bool {
	if len(d.Photos) >= MaxIncidentPhotos {
		return false
	}
	d.Photos = append(d.Photos, uri)
	return true
}

// IncidentRecord is the backend's acknowledgment of a submitted incident.
type IncidentRecord struct {
	IncidentID string    `json:"incidentId"`
	CreatedAt  time.Time `json:"createdAt"`
}
