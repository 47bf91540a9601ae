// File: tahanansafe/cli/auth.go
package cli

import (
	"context"
	"fmt"
	"time"

	"tahanansafe/services/auth"
)

func (a *App) runSignup(ctx context.Context) error {
	r := a.reader()
	flow := auth.NewOnboardingFlow(a.Auth, a.ResendSeconds)

	// Signup step. Validation failures keep the user on the step.
	for flow.Step == auth.StepSignup {
		var err error
		if flow.Draft.Email, err = prompt(r, a.Out, "Email: "); err != nil {
			return err
		}
		if flow.Draft.Password, err = prompt(r, a.Out, "Password: "); err != nil {
			return err
		}
		if flow.Draft.ConfirmPassword, err = prompt(r, a.Out, "Confirm password: "); err != nil {
			return err
		}
		if err := flow.SubmitSignup(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
			continue
		}
		fmt.Fprintf(a.Out, "A verification code was sent to %s.\n", flow.Draft.Email)
	}

	// OTP step.
	otp := newOTPPrompt(flow.Resend)
	for flow.Step == auth.StepVerifyOTP {
		code, resend, err := otp.read(r, a.Out)
		if err != nil {
			return err
		}
		if resend {
			if err := flow.ResendOTP(ctx); err != nil {
				fmt.Fprintf(a.Out, "%v\n", err)
			} else {
				fmt.Fprintln(a.Out, "Code resent.")
			}
			continue
		}
		flow.Draft.OTP = code
		if err := flow.SubmitOTP(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	// Personal details.
	for flow.Step == auth.StepPersonalDetails {
		d := &flow.Draft.PersonalDetails
		var err error
		if d.FirstName, err = prompt(r, a.Out, "First name: "); err != nil {
			return err
		}
		if d.LastName, err = prompt(r, a.Out, "Last name: "); err != nil {
			return err
		}
		if d.Gender, err = prompt(r, a.Out, "Gender (optional): "); err != nil {
			return err
		}
		if d.Year, err = promptInt(r, a.Out, "Birth year: "); err != nil {
			return err
		}
		if d.Month, err = promptInt(r, a.Out, "Birth month (1-12): "); err != nil {
			return err
		}
		if d.Day, err = promptInt(r, a.Out, "Birth day: "); err != nil {
			return err
		}
		// Mirror the picker: the triple is clamped before submission.
		m, day, y := auth.ClampDOB(time.Month(d.Month), d.Day, d.Year, time.Now())
		d.Month, d.Day, d.Year = int(m), day, y
		if d.Phone, err = prompt(r, a.Out, "Mobile number (9XXXXXXXXX): "); err != nil {
			return err
		}
		if err := flow.SubmitPersonalDetails(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	// Security question.
	for flow.Step == auth.StepSecurityQuestion {
		fmt.Fprintln(a.Out, "Choose a security question:")
		for i, q := range auth.SecurityQuestions {
			fmt.Fprintf(a.Out, "  %d. %s\n", i+1, q)
		}
		pick, err := promptInt(r, a.Out, "Question number: ")
		if err != nil {
			return err
		}
		if pick < 1 || pick > len(auth.SecurityQuestions) {
			fmt.Fprintln(a.Out, "Pick a number from the list.")
			continue
		}
		flow.Draft.Question = auth.SecurityQuestions[pick-1]
		if flow.Draft.Answer, err = prompt(r, a.Out, "Answer: "); err != nil {
			return err
		}
		if err := flow.SubmitSecurityQuestion(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	// PIN.
	for flow.Step == auth.StepCreatePIN {
		var err error
		if flow.Draft.PIN, err = prompt(r, a.Out, "Create a 4-digit PIN: "); err != nil {
			return err
		}
		if flow.Draft.ConfirmPIN, err = prompt(r, a.Out, "Confirm PIN: "); err != nil {
			return err
		}
		if err := flow.SubmitPIN(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	if err := a.Sessions.SetOnboardingSeen(true); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Account created. You are logged in.")
	return nil
}

func (a *App) runLogin(ctx context.Context) error {
	r := a.reader()
	email, err := prompt(r, a.Out, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(r, a.Out, "Password: ")
	if err != nil {
		return err
	}
	if err := a.Auth.Login(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "A login code was sent to %s.\n", email)

	countdown := auth.NewCountdown(a.ResendSeconds)
	countdown.Start()
	otp := newOTPPrompt(countdown)
	for {
		code, resend, err := otp.read(r, a.Out)
		if err != nil {
			return err
		}
		if resend {
			if !countdown.CanResend() {
				fmt.Fprintln(a.Out, "Wait for the countdown before resending.")
				continue
			}
			if err := a.Auth.ResendLoginOTP(ctx, email); err != nil {
				fmt.Fprintf(a.Out, "%v\n", err)
				continue
			}
			countdown.Start()
			fmt.Fprintln(a.Out, "Code resent.")
			continue
		}
		if err := a.Auth.VerifyLoginOTP(ctx, email, code); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
			continue
		}
		break
	}
	fmt.Fprintln(a.Out, "Logged in.")
	return nil
}

func (a *App) runForgotPassword(ctx context.Context) error {
	r := a.reader()
	flow := auth.NewForgotFlow(a.Auth, a.ResendSeconds)

	for flow.Step == auth.ForgotEmail {
		var err error
		if flow.Email, err = prompt(r, a.Out, "Email: "); err != nil {
			return err
		}
		if err := flow.SubmitEmail(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
			continue
		}
		fmt.Fprintf(a.Out, "A reset code was sent to %s.\n", flow.Email)
	}

	otp := newOTPPrompt(flow.Resend)
	for flow.Step == auth.ForgotOTP {
		code, resend, err := otp.read(r, a.Out)
		if err != nil {
			return err
		}
		if resend {
			if err := flow.ResendOTP(ctx); err != nil {
				fmt.Fprintf(a.Out, "%v\n", err)
			} else {
				fmt.Fprintln(a.Out, "Code resent.")
			}
			continue
		}
		flow.OTP = code
		if err := flow.SubmitOTP(ctx); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	for flow.Step == auth.ForgotNewPassword {
		newPass, err := prompt(r, a.Out, "New password: ")
		if err != nil {
			return err
		}
		confirm, err := prompt(r, a.Out, "Confirm new password: ")
		if err != nil {
			return err
		}
		if err := flow.SubmitNewPassword(ctx, newPass, confirm); err != nil {
			fmt.Fprintf(a.Out, "%v\n", err)
		}
	}

	fmt.Fprintln(a.Out, "Password updated. You can log in now.")
	return nil
}

func (a *App) runLogout(ctx context.Context) error {
	if err := a.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Logged out.")
	return nil
}

func (a *App) runStatus() error {
	if !a.Sessions.LoggedIn() {
		fmt.Fprintln(a.Out, "Not logged in.")
		return nil
	}
	sess := a.Sessions.Get()
	if sess.User != nil && sess.User.Email != "" {
		fmt.Fprintf(a.Out, "Logged in as %s.\n", sess.User.Email)
	} else {
		fmt.Fprintln(a.Out, "Logged in.")
	}
	if a.Sessions.HasPIN() {
		fmt.Fprintln(a.Out, "Device PIN is set.")
	}
	return nil
}
