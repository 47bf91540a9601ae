// File: tahanansafe/services/auth/signup.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tahanansafe/models"
	"tahanansafe/session"
	"tahanansafe/utils"
)

// Signup validates the registration fields and creates a pending account.
// It returns the email that was actually submitted: the OTP step must carry
// this value through, never a placeholder.
func (s *DefaultAuthService) Signup(ctx context.Context, email, password, confirm string) (string, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return "", err
	}
	if err := validatePassword(password, confirm); err != nil {
		return "", err
	}

	body := map[string]string{"email": email, "password": password}
	if _, err := s.Client.Request(ctx, http.MethodPost, registerPath, body); err != nil {
		return "", err
	}
	utils.GetLogger().Sugar().Infof("Signup: registered pending account for %s", email)
	return email, nil
}

// VerifyRegistrationOTP submits the 4-digit code. On success the response
// must carry an access token; the session is persisted before the caller is
// told to advance. A token-less success persists nothing.
func (s *DefaultAuthService) VerifyRegistrationOTP(ctx context.Context, email, code string) error {
	if err := validateOTP(code); err != nil {
		return err
	}
	body := map[string]string{"email": email, "otp": code}
	raw, err := s.Client.Request(ctx, http.MethodPost, verifyRegistrationPath, body)
	if err != nil {
		return err
	}
	return s.establishSession(raw)
}

// ResendRegistrationOTP asks the backend to email a fresh signup code. The
// caller is responsible for honoring the resend countdown.
func (s *DefaultAuthService) ResendRegistrationOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := s.Client.Request(ctx, http.MethodPost, resendRegistrationPath, body)
	return err
}

// establishSession parses a verification response, requires an access token,
// and persists the session. Shared by registration and login verification.
func (s *DefaultAuthService) establishSession(raw json.RawMessage) error {
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("failed to parse verification response: %w", err)
	}

	accessToken, _ := parsed["accessToken"].(string)
	if accessToken == "" {
		utils.GetLogger().Error("establishSession: verification response missing accessToken")
		return ErrMissingAccessToken
	}
	refreshToken, _ := parsed["refreshToken"].(string)

	user := models.NormalizeUser(parsed["user"])
	if user == nil {
		// Some backend builds return the profile at the top level.
		user = models.NormalizeUser(parsed)
	}

	if err := s.Sessions.Save(session.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	utils.GetLogger().Debug("establishSession: session persisted",
		zap.Bool("hasRefresh", refreshToken != ""), zap.Bool("hasUser", user != nil))
	return nil
}

// cacheUserFromResponse refreshes the cached profile when an update response
// echoes the user back. A response without one is not an error.
func (s *DefaultAuthService) cacheUserFromResponse(raw json.RawMessage) {
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return
	}
	user := models.NormalizeUser(parsed["user"])
	if user == nil {
		user = models.NormalizeUser(parsed)
	}
	if user == nil {
		return
	}
	if err := s.Sessions.UpdateUser(user); err != nil {
		utils.GetLogger().Warn("cacheUserFromResponse: failed to cache profile", zap.Error(err))
	}
}
