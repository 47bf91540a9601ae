// File: tahanansafe/services/auth/forgotPass.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"tahanansafe/utils"
)

// SendResetOTP requests a password-reset code for the given email.
func (s *DefaultAuthService) SendResetOTP(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	body := map[string]string{"email": email}
	_, err := s.Client.Request(ctx, http.MethodPost, resetSendOTPPath, body)
	return err
}

// VerifyResetOTP exchanges a verified code for a short-lived reset token.
// The token, not the OTP, is what authorizes the subsequent password change;
// verifying the code alone grants nothing.
func (s *DefaultAuthService) VerifyResetOTP(ctx context.Context, email, code string) (string, error) {
	if err := validateOTP(code); err != nil {
		return "", err
	}
	body := map[string]string{"email": email, "otp": code}
	raw, err := s.Client.Request(ctx, http.MethodPost, resetVerifyOTPPath, body)
	if err != nil {
		return "", err
	}

	var parsed struct {
		ResetToken string `json:"resetToken"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse reset response: %w", err)
	}
	if parsed.ResetToken == "" {
		return "", ErrMissingResetToken
	}
	return parsed.ResetToken, nil
}

// ResetPassword submits the new password under the reset token's authority.
// Local validation runs first: a mismatch or short password never reaches
// the network.
func (s *DefaultAuthService) ResetPassword(ctx context.Context, resetToken, newPassword, confirm string) error {
	if err := validatePassword(newPassword, confirm); err != nil {
		return err
	}
	if resetToken == "" {
		return ValidationError{Field: "resetToken", Message: "verify the emailed code first"}
	}

	body := map[string]string{"resetToken": resetToken, "newPassword": newPassword}
	if _, err := s.Client.Request(ctx, http.MethodPost, resetPasswordPath, body); err != nil {
		return err
	}
	utils.GetLogger().Sugar().Info("ResetPassword: password updated")
	return nil
}
