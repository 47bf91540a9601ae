// File: tahanansafe/services/auth/details.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tahanansafe/api"
	"tahanansafe/utils"
)

// SavePersonalDetails validates and commits the profile step.
func (s *DefaultAuthService) SavePersonalDetails(ctx context.Context, d PersonalDetails) error {
	if strings.TrimSpace(d.FirstName) == "" {
		return ValidationError{Field: "firstName", Message: "first name is required"}
	}
	if strings.TrimSpace(d.LastName) == "" {
		return ValidationError{Field: "lastName", Message: "last name is required"}
	}
	if err := ValidateDOB(time.Month(d.Month), d.Day, d.Year, time.Now()); err != nil {
		return err
	}
	phone := CommitPhone(d.Phone)
	if !IsValidLocalMobile10(phone) {
		return ValidationError{Field: "contactNumber",
			Message: "enter a 10-digit mobile number starting with 9"}
	}

	token := s.Sessions.AccessToken()
	if token == "" {
		return ErrNotAuthenticated
	}

	body := map[string]string{
		"firstName":     strings.TrimSpace(d.FirstName),
		"lastName":      strings.TrimSpace(d.LastName),
		"gender":        d.Gender,
		"dateOfBirth":   fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day),
		"contactNumber": phone,
	}
	raw, err := s.Client.Request(ctx, http.MethodPut, personalDetailsPath, body, api.WithBearer(token))
	if err != nil {
		return err
	}
	s.cacheUserFromResponse(raw)
	return nil
}

// SaveSecurityQuestion commits the chosen question and answer.
func (s *DefaultAuthService) SaveSecurityQuestion(ctx context.Context, question, answer string) error {
	if err := validateSecurityQuestion(question); err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		return ValidationError{Field: "answer", Message: "answer is required"}
	}

	token := s.Sessions.AccessToken()
	if token == "" {
		return ErrNotAuthenticated
	}

	body := map[string]string{"question": question, "answer": strings.TrimSpace(answer)}
	_, err := s.Client.Request(ctx, http.MethodPut, securityQuestionPath, body, api.WithBearer(token))
	return err
}

// CreatePIN validates locally (length and match are never a network error),
// registers the PIN with the backend, then mirrors it into the local gate.
func (s *DefaultAuthService) CreatePIN(ctx context.Context, pin, confirm string) error {
	if err := validatePIN(pin, confirm); err != nil {
		return err
	}

	token := s.Sessions.AccessToken()
	if token == "" {
		return ErrNotAuthenticated
	}

	body := map[string]string{"pin": pin}
	if _, err := s.Client.Request(ctx, http.MethodPut, setPinPath, body, api.WithBearer(token)); err != nil {
		return err
	}
	if err := s.Sessions.SetPIN(pin); err != nil {
		return fmt.Errorf("PIN saved to account but not on this device: %w", err)
	}
	utils.GetLogger().Sugar().Info("CreatePIN: device PIN created")
	return nil
}
