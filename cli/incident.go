// File: tahanansafe/cli/incident.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"tahanansafe/models"
	"tahanansafe/services/incident"
)

func (a *App) runReport(ctx context.Context) error {
	r := a.reader()
	if err := a.requirePIN(r); err != nil {
		return err
	}

	flow := incident.NewFlow(a.Incidents, models.ModeComplain)
	d := &flow.Draft

	for flow.Step == incident.StepForm {
		var err error
		if d.IncidentType, err = prompt(r, a.Out, "Incident type: "); err != nil {
			return err
		}
		if d.Details, err = prompt(r, a.Out, "Details: "); err != nil {
			return err
		}
		if d.WitnessName, err = prompt(r, a.Out, "Witness name (optional): "); err != nil {
			return err
		}
		if d.WitnessName != "" {
			if d.WitnessType, err = prompt(r, a.Out, "Witness type (optional): "); err != nil {
				return err
			}
		}
		now := time.Now()
		if d.DateStr, err = promptDefault(r, a, "Date", now.Format("2006-01-02")); err != nil {
			return err
		}
		if d.TimeStr, err = promptDefault(r, a, "Time", now.Format("15:04")); err != nil {
			return err
		}
		if d.LocationStr, err = prompt(r, a.Out, "Location: "); err != nil {
			return err
		}
		for len(d.Photos) < models.MaxIncidentPhotos {
			uri, err := prompt(r, a.Out, "Photo path (blank to finish): ")
			if err != nil {
				return err
			}
			if uri == "" {
				break
			}
			d.AddPhoto(uri)
		}
		if err := flow.Preview(); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	// Preview shows exactly what will be sent.
	for flow.Step == incident.StepPreview {
		fmt.Fprintln(a.Out, "--- Review your report ---")
		fmt.Fprintf(a.Out, "Type:     %s\n", d.IncidentType)
		fmt.Fprintf(a.Out, "Details:  %s\n", d.Details)
		if d.WitnessName != "" {
			fmt.Fprintf(a.Out, "Witness:  %s (%s)\n", d.WitnessName, d.WitnessType)
		}
		fmt.Fprintf(a.Out, "When:     %s %s\n", d.DateStr, d.TimeStr)
		fmt.Fprintf(a.Out, "Where:    %s\n", d.LocationStr)
		fmt.Fprintf(a.Out, "Photos:   %d\n", len(d.Photos))

		answer, err := prompt(r, a.Out, "Submit this report? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") {
			fmt.Fprintln(a.Out, "Report not submitted.")
			return nil
		}
		record, err := flow.Confirm(ctx)
		if err != nil {
			// Draft survives; the user can retry from the preview.
			fmt.Fprintf(a.Out, "Submission failed: %v\n", err)
			continue
		}
		fmt.Fprintf(a.Out, "Report submitted. Reference: %s\n", record.IncidentID)
	}
	return nil
}

func (a *App) runEmergency(ctx context.Context) error {
	r := a.reader()

	flow := incident.NewFlow(a.Incidents, models.ModeEmergency)
	var err error
	if flow.Draft.Details, err = prompt(r, a.Out, "What is happening? "); err != nil {
		return err
	}
	if flow.Draft.LocationStr, err = prompt(r, a.Out, "Where? "); err != nil {
		return err
	}
	now := time.Now()
	flow.Draft.DateStr = now.Format("2006-01-02")
	flow.Draft.TimeStr = now.Format("15:04")

	// No preview: emergency reports trade review for speed.
	record, err := flow.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Emergency reported. Help is being notified. Reference: %s\n", record.IncidentID)
	return nil
}

func promptDefault(r *bufio.Reader, a *App, label, def string) (string, error) {
	line, err := prompt(r, a.Out, fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}
