// File: tahanansafe/services/auth/model.go
package auth

import "fmt"

// Step is the onboarding machine's state. The flow is linear with no cycles:
// a failed backend call leaves the machine where it is.
type Step int

const (
	StepSignup Step = iota
	StepVerifyOTP
	StepPersonalDetails
	StepSecurityQuestion
	StepCreatePIN
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepSignup:
		return "signup"
	case StepVerifyOTP:
		return "verify-otp"
	case StepPersonalDetails:
		return "personal-details"
	case StepSecurityQuestion:
		return "security-question"
	case StepCreatePIN:
		return "create-pin"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Event is something that happened to the onboarding flow.
type Event int

const (
	EvSignupAccepted Event = iota
	EvOTPVerified
	EvDetailsSaved
	EvQuestionSaved
	EvPINCreated
)

// Advance is the pure transition function for the onboarding machine.
// Only the event matching the current step moves it forward.
func Advance(s Step, ev Event) (Step, error) {
	valid := map[Step]Event{
		StepSignup:           EvSignupAccepted,
		StepVerifyOTP:        EvOTPVerified,
		StepPersonalDetails:  EvDetailsSaved,
		StepSecurityQuestion: EvQuestionSaved,
		StepCreatePIN:        EvPINCreated,
	}
	if want, ok := valid[s]; ok && ev == want {
		return s + 1, nil
	}
	return s, fmt.Errorf("event %d not valid at step %s", int(ev), s)
}

// OnboardingDraft accumulates user input across onboarding steps. It exists
// only in memory for one flow instance and is discarded when the flow
// completes or is abandoned; whatever a committed step already sent to the
// backend (a registered-but-unverified email, say) is the only residue.
type OnboardingDraft struct {
	Email           string
	Password        string
	ConfirmPassword string
	OTP             string
	PersonalDetails
	Question   string
	Answer     string
	PIN        string
	ConfirmPIN string
}

// PersonalDetails carries the profile step's fields. Month/Day/Year come
// from three independently pickable dropdowns.
type PersonalDetails struct {
	FirstName string
	LastName  string
	Gender    string
	Month     int
	Day       int
	Year      int
	Phone     string
}

// ForgotStep is the forgot-password machine's state.
type ForgotStep int

const (
	ForgotEmail ForgotStep = iota
	ForgotOTP
	ForgotNewPassword
	ForgotSuccess
)

// ForgotEvent drives the forgot-password machine.
type ForgotEvent int

const (
	EvResetOTPSent ForgotEvent = iota
	EvResetOTPVerified
	EvPasswordReset
)

// AdvanceForgot is the pure transition function for the forgot-password flow.
func AdvanceForgot(s ForgotStep, ev ForgotEvent) (ForgotStep, error) {
	valid := map[ForgotStep]ForgotEvent{
		ForgotEmail:       EvResetOTPSent,
		ForgotOTP:         EvResetOTPVerified,
		ForgotNewPassword: EvPasswordReset,
	}
	if want, ok := valid[s]; ok && ev == want {
		return s + 1, nil
	}
	return s, fmt.Errorf("forgot-password event %d not valid at step %d", int(ev), int(s))
}
