// File: tahanansafe/services/auth/validate.go
package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// MinPasswordLength applies to signup and password reset alike.
	MinPasswordLength = 6
	// PINLength is fixed: the backend and the local gate both expect 4 digits.
	PINLength = 4
	// OTPLength is the number of digits in every emailed code.
	OTPLength = 4
)

// SecurityQuestions is the fixed list a user picks from during onboarding.
var SecurityQuestions = []string{
	"What is your mother's maiden name?",
	"What was the name of your first pet?",
	"What city were you born in?",
	"What was the name of your elementary school?",
	"What is your favorite food?",
}

var (
	localMobileRe = regexp.MustCompile(`^9\d{9}$`)
	digitsOnlyRe  = regexp.MustCompile(`\D`)
	numericRe     = regexp.MustCompile(`^\d+$`)
)

// IsValidLocalMobile10 reports whether n is a 10-digit local mobile number
// starting with 9. The +63 prefix is the server's concern.
func IsValidLocalMobile10(n string) bool {
	return localMobileRe.MatchString(n)
}

// CommitPhone normalizes raw phone input to its digit-only form, truncated
// to 10 characters. This is exactly what gets stored in the draft.
func CommitPhone(input string) string {
	digits := digitsOnlyRe.ReplaceAllString(input, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}

// DaysIn returns the real day count of (month, year), February included.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDOB forces a picker triple onto a real calendar date no later than
// now: the day is clamped to the month's actual length, then the whole date
// is clamped to today.
func ClampDOB(month time.Month, day, year int, now time.Time) (time.Month, int, int) {
	if max := DaysIn(month, year); day > max {
		day = max
	}
	if day < 1 {
		day = 1
	}
	picked := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if picked.After(today) {
		return today.Month(), today.Day(), today.Year()
	}
	return month, day, year
}

// ValidateDOB rejects triples that do not form a real past-or-present date.
func ValidateDOB(month time.Month, day, year int, now time.Time) error {
	if month < time.January || month > time.December {
		return ValidationError{Field: "dateOfBirth", Message: "invalid month"}
	}
	if day < 1 || day > DaysIn(month, year) {
		return ValidationError{Field: "dateOfBirth", Message: "invalid day for the selected month"}
	}
	picked := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if picked.After(now) {
		return ValidationError{Field: "dateOfBirth", Message: "date of birth cannot be in the future"}
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	return nil
}

func validatePassword(password, confirm string) error {
	if len(password) < MinPasswordLength {
		return ValidationError{Field: "password",
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}
	if password != confirm {
		return ValidationError{Field: "confirmPassword", Message: "passwords do not match"}
	}
	return nil
}

func validatePIN(pin, confirm string) error {
	if len(pin) != PINLength || !numericRe.MatchString(pin) {
		return ValidationError{Field: "pin",
			Message: fmt.Sprintf("PIN must be exactly %d digits", PINLength)}
	}
	if pin != confirm {
		return ValidationError{Field: "confirmPin", Message: "PINs do not match"}
	}
	return nil
}

func validateOTP(code string) error {
	if len(code) != OTPLength || !numericRe.MatchString(code) {
		return ValidationError{Field: "otp",
			Message: fmt.Sprintf("enter the %d-digit code", OTPLength)}
	}
	return nil
}

func validateSecurityQuestion(question string) error {
	for _, q := range SecurityQuestions {
		if q == question {
			return nil
		}
	}
	return ValidationError{Field: "question", Message: "choose a security question from the list"}
}
