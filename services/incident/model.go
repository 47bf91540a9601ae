// File: tahanansafe/services/incident/model.go
package incident

import "fmt"

// Step is the submission machine's state.
type Step int

const (
	StepForm Step = iota
	StepPreview
	StepSubmitting
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepForm:
		return "form"
	case StepPreview:
		return "preview"
	case StepSubmitting:
		return "submitting"
	case StepConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Event drives the submission machine.
type Event int

const (
	EvPreview Event = iota
	EvSubmit
	EvSubmitOK
	EvSubmitFailed
)

// Advance is the pure transition function. Emergency mode submits straight
// from the form; a failed submit returns to preview with the draft intact,
// so resubmission never means re-entering the form.
func Advance(s Step, ev Event, emergency bool) (Step, error) {
	switch {
	case s == StepForm && ev == EvPreview && !emergency:
		return StepPreview, nil
	case s == StepForm && ev == EvSubmit && emergency:
		return StepSubmitting, nil
	case s == StepPreview && ev == EvSubmit:
		return StepSubmitting, nil
	case s == StepSubmitting && ev == EvSubmitOK:
		return StepConfirmed, nil
	case s == StepSubmitting && ev == EvSubmitFailed:
		if emergency {
			return StepForm, nil
		}
		return StepPreview, nil
	}
	return s, fmt.Errorf("event %d not valid at step %s", int(ev), s)
}
