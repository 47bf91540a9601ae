// File: tahanansafe/services/auth/signin.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"tahanansafe/utils"
)

// Login checks credentials; success means the backend has emailed a login
// OTP and the caller should move to the verification step.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}

	body := map[string]string{"email": email, "password": password}
	if _, err := s.Client.Request(ctx, http.MethodPost, loginPath, body); err != nil {
		return err
	}
	utils.GetLogger().Sugar().Infof("Login: OTP sent for %s", email)
	return nil
}

// VerifyLoginOTP exchanges the login code for a session. The same
// token-required rule applies as for registration verification.
func (s *DefaultAuthService) VerifyLoginOTP(ctx context.Context, email, code string) error {
	if err := validateOTP(code); err != nil {
		return err
	}
	body := map[string]string{"email": email, "otp": code}
	raw, err := s.Client.Request(ctx, http.MethodPost, verifyLoginPath, body)
	if err != nil {
		return err
	}
	return s.establishSession(raw)
}

// ResendLoginOTP asks for a fresh login code.
func (s *DefaultAuthService) ResendLoginOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := s.Client.Request(ctx, http.MethodPost, resendLoginPath, body)
	return err
}

// Logout clears the device's session and PIN. The backend owns token
// revocation; locally the only obligation is leaving no cached state.
func (s *DefaultAuthService) Logout(ctx context.Context) error {
	if err := s.Sessions.Clear(); err != nil {
		return err
	}
	utils.GetLogger().Sugar().Info("Logout: local session cleared")
	return nil
}
