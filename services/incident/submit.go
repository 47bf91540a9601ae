// File: tahanansafe/services/incident/submit.go
package incident

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tahanansafe/api"
	"tahanansafe/models"
	"tahanansafe/session"
	"tahanansafe/utils"
)

const incidentsPath = "/api/mobile/incidents"

type Service interface {
	Submit(ctx context.Context, d models.IncidentDraft) (*models.IncidentRecord, error)
}

// DefaultIncidentService uploads incidents as multipart form data.
type DefaultIncidentService struct {
	Client   *api.Client
	Sessions *session.Store
	// Open resolves photo URIs; defaults to the local filesystem.
	Open api.PhotoOpener

	guard opGuard
}

var _ Service = (*DefaultIncidentService)(nil)

// ValidateDraft applies the form rules: details always required, the
// incident type only in complain mode.
func ValidateDraft(d models.IncidentDraft) error {
	if d.Mode != models.ModeComplain && d.Mode != models.ModeEmergency {
		return fmt.Errorf("unknown incident mode %q", d.Mode)
	}
	if d.Mode == models.ModeComplain && strings.TrimSpace(d.IncidentType) == "" {
		return fmt.Errorf("incident type is required")
	}
	if strings.TrimSpace(d.Details) == "" {
		return fmt.Errorf("details are required")
	}
	return nil
}

// Submit uploads the draft. At most one submission runs at a time; a second
// call while one is outstanding fails locally with ErrSubmissionInFlight.
func (s *DefaultIncidentService) Submit(ctx context.Context, d models.IncidentDraft) (*models.IncidentRecord, error) {
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}
	token := s.Sessions.AccessToken()
	if token == "" {
		return nil, fmt.Errorf("please login again")
	}
	if !s.guard.begin() {
		return nil, ErrSubmissionInFlight
	}
	defer s.guard.end()

	open := s.Open
	if open == nil {
		open = api.OSPhotoOpener
	}

	fields := map[string]string{
		"mode":        d.Mode,
		"details":     d.Details,
		"witnessName": d.WitnessName,
		"witnessType": d.WitnessType,
		"date":        d.DateStr,
		"time":        d.TimeStr,
		"location":    d.LocationStr,
	}
	if d.Mode == models.ModeComplain {
		fields["incidentType"] = d.IncidentType
	}

	form, err := api.BuildIncidentForm(fields, d.Photos, open)
	if err != nil {
		return nil, err
	}

	raw, err := s.Client.RequestMultipart(ctx, http.MethodPost, incidentsPath, form, api.WithBearer(token))
	if err != nil {
		return nil, err
	}

	var record models.IncidentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to parse submission response: %w", err)
	}
	utils.GetLogger().Sugar().Infof("Submit: incident %s recorded", record.IncidentID)
	return &record, nil
}

// Flow drives one submission: Form → Preview → Submitting → Confirmed.
// The preview shows the draft exactly as it will be sent; nothing is
// re-fetched from the server in between.
type Flow struct {
	Svc    Service
	Step   Step
	Draft  models.IncidentDraft
	Record *models.IncidentRecord
}

// NewFlow starts a submission in the given mode.
func NewFlow(svc Service, mode string) *Flow {
	return &Flow{
		Svc:   svc,
		Step:  StepForm,
		Draft: models.IncidentDraft{Mode: mode},
	}
}

func (f *Flow) emergency() bool {
	return f.Draft.Mode == models.ModeEmergency
}

// Preview validates the form and hands the draft to the confirmation step.
// Emergency reports have no review step; call Confirm directly.
func (f *Flow) Preview() error {
	if f.emergency() {
		return fmt.Errorf("emergency reports submit without preview")
	}
	if err := ValidateDraft(f.Draft); err != nil {
		return err
	}
	next, err := Advance(f.Step, EvPreview, false)
	if err != nil {
		return err
	}
	f.Step = next
	return nil
}

// Confirm performs the upload. On success the draft is discarded and the
// flow is Confirmed; on failure the draft survives on the previous step.
func (f *Flow) Confirm(ctx context.Context) (*models.IncidentRecord, error) {
	next, err := Advance(f.Step, EvSubmit, f.emergency())
	if err != nil {
		return nil, err
	}
	f.Step = next

	record, submitErr := f.Svc.Submit(ctx, f.Draft)
	if submitErr != nil {
		f.Step, _ = Advance(f.Step, EvSubmitFailed, f.emergency())
		utils.GetLogger().Debug("incident: submission failed, draft kept",
			zap.String("step", f.Step.String()), zap.Error(submitErr))
		return nil, submitErr
	}

	f.Step, _ = Advance(f.Step, EvSubmitOK, f.emergency())
	f.Record = record
	f.Draft = models.IncidentDraft{Mode: f.Draft.Mode}
	return record, nil
}
