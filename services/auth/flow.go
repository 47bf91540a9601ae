// File: tahanansafe/services/auth/flow.go
package auth

import "context"

// OnboardingFlow drives one signup session: Signup → VerifyOTP →
// PersonalDetails → SecurityQuestion → CreatePIN → Done. Every submit
// validates, performs the step's effect, and only then advances; a failure
// of any kind leaves the flow on its current step with the draft intact.
type OnboardingFlow struct {
	Svc    Service
	Step   Step
	Draft  OnboardingDraft
	Resend *Countdown
}

// NewOnboardingFlow starts a fresh flow instance.
func NewOnboardingFlow(svc Service, resendSeconds int) *OnboardingFlow {
	return &OnboardingFlow{
		Svc:    svc,
		Step:   StepSignup,
		Resend: NewCountdown(resendSeconds),
	}
}

// SubmitSignup registers the account and moves to OTP verification. The
// draft keeps the email the backend actually accepted.
func (f *OnboardingFlow) SubmitSignup(ctx context.Context) error {
	email, err := f.Svc.Signup(ctx, f.Draft.Email, f.Draft.Password, f.Draft.ConfirmPassword)
	if err != nil {
		return err
	}
	f.Draft.Email = email
	f.Step, _ = Advance(f.Step, EvSignupAccepted)
	f.Resend.Start()
	return nil
}

// SubmitOTP verifies the signup code. The session is persisted inside the
// service before the step advances.
func (f *OnboardingFlow) SubmitOTP(ctx context.Context) error {
	if err := f.Svc.VerifyRegistrationOTP(ctx, f.Draft.Email, f.Draft.OTP); err != nil {
		return err
	}
	f.Step, _ = Advance(f.Step, EvOTPVerified)
	return nil
}

// ResendOTP requests a fresh code. Disallowed while the countdown runs;
// on success the countdown restarts and the entered code is cleared.
func (f *OnboardingFlow) ResendOTP(ctx context.Context) error {
	if !f.Resend.CanResend() {
		return ValidationError{Field: "otp", Message: "wait for the countdown before resending"}
	}
	if err := f.Svc.ResendRegistrationOTP(ctx, f.Draft.Email); err != nil {
		return err
	}
	f.Draft.OTP = ""
	f.Resend.Start()
	return nil
}

// SubmitPersonalDetails commits the profile step.
func (f *OnboardingFlow) SubmitPersonalDetails(ctx context.Context) error {
	if err := f.Svc.SavePersonalDetails(ctx, f.Draft.PersonalDetails); err != nil {
		return err
	}
	f.Step, _ = Advance(f.Step, EvDetailsSaved)
	return nil
}

// SubmitSecurityQuestion commits the chosen question and answer.
func (f *OnboardingFlow) SubmitSecurityQuestion(ctx context.Context) error {
	if err := f.Svc.SaveSecurityQuestion(ctx, f.Draft.Question, f.Draft.Answer); err != nil {
		return err
	}
	f.Step, _ = Advance(f.Step, EvQuestionSaved)
	return nil
}

// SubmitPIN creates the device PIN and completes onboarding.
func (f *OnboardingFlow) SubmitPIN(ctx context.Context) error {
	if err := f.Svc.CreatePIN(ctx, f.Draft.PIN, f.Draft.ConfirmPIN); err != nil {
		return err
	}
	f.Step, _ = Advance(f.Step, EvPINCreated)
	f.Draft = OnboardingDraft{Email: f.Draft.Email}
	return nil
}

// ForgotFlow drives one password-reset session: Email → OTP → NewPassword →
// Success. The reset token returned by OTP verification is the only thing
// carried between the last two steps.
type ForgotFlow struct {
	Svc        Service
	Step       ForgotStep
	Email      string
	OTP        string
	ResetToken string
	Resend     *Countdown
}

func NewForgotFlow(svc Service, resendSeconds int) *ForgotFlow {
	return &ForgotFlow{
		Svc:    svc,
		Step:   ForgotEmail,
		Resend: NewCountdown(resendSeconds),
	}
}

// SubmitEmail requests the reset code and moves to OTP entry.
func (f *ForgotFlow) SubmitEmail(ctx context.Context) error {
	if err := f.Svc.SendResetOTP(ctx, f.Email); err != nil {
		return err
	}
	f.Step, _ = AdvanceForgot(f.Step, EvResetOTPSent)
	f.Resend.Start()
	return nil
}

// SubmitOTP exchanges the code for a reset token.
func (f *ForgotFlow) SubmitOTP(ctx context.Context) error {
	token, err := f.Svc.VerifyResetOTP(ctx, f.Email, f.OTP)
	if err != nil {
		return err
	}
	f.ResetToken = token
	f.Step, _ = AdvanceForgot(f.Step, EvResetOTPVerified)
	return nil
}

// ResendOTP requests a fresh reset code, countdown permitting.
func (f *ForgotFlow) ResendOTP(ctx context.Context) error {
	if !f.Resend.CanResend() {
		return ValidationError{Field: "otp", Message: "wait for the countdown before resending"}
	}
	if err := f.Svc.SendResetOTP(ctx, f.Email); err != nil {
		return err
	}
	f.OTP = ""
	f.Resend.Start()
	return nil
}

// SubmitNewPassword changes the password under the reset token's authority.
func (f *ForgotFlow) SubmitNewPassword(ctx context.Context, newPassword, confirm string) error {
	if err := f.Svc.ResetPassword(ctx, f.ResetToken, newPassword, confirm); err != nil {
		return err
	}
	f.ResetToken = ""
	f.Step, _ = AdvanceForgot(f.Step, EvPasswordReset)
	return nil
}
