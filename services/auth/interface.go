package auth

import (
	"context"

	"tahanansafe/api"
	"tahanansafe/session"
)

// Mobile auth endpoints.
const (
	registerPath           = "/api/mobile/v1/register"
	verifyRegistrationPath = "/api/mobile/v1/verify-registration-otp"
	resendRegistrationPath = "/api/mobile/v1/resend-registration-otp"
	loginPath              = "/api/mobile/v1/login"
	verifyLoginPath        = "/api/mobile/v1/verify-login-otp"
	resendLoginPath        = "/api/mobile/v1/resend-login-otp"
	personalDetailsPath    = "/api/mobile/v1/personal-details"
	securityQuestionPath   = "/api/mobile/v1/security-question"
	setPinPath             = "/api/mobile/v1/users/set-pin"
	resetSendOTPPath       = "/api/mobile/v1/forgot-password/send-otp"
	resetVerifyOTPPath     = "/api/mobile/v1/forgot-password/verify-otp"
	resetPasswordPath      = "/api/mobile/v1/forgot-password/reset"
)

type Service interface {
	// Onboarding
	Signup(ctx context.Context, email, password, confirm string) (string, error)
	VerifyRegistrationOTP(ctx context.Context, email, code string) error
	ResendRegistrationOTP(ctx context.Context, email string) error
	SavePersonalDetails(ctx context.Context, d PersonalDetails) error
	SaveSecurityQuestion(ctx context.Context, question, answer string) error
	CreatePIN(ctx context.Context, pin, confirm string) error

	// Login
	Login(ctx context.Context, email, password string) error
	VerifyLoginOTP(ctx context.Context, email, code string) error
	ResendLoginOTP(ctx context.Context, email string) error
	Logout(ctx context.Context) error

	// Forgot password
	SendResetOTP(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword, confirm string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Client   *api.Client
	Sessions *session.Store
}

var _ Service = (*DefaultAuthService)(nil)
