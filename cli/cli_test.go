// File: tahanansafe/cli/cli_test.go
package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahanansafe/services/auth"
	"tahanansafe/session"
)

// stubAuth satisfies auth.Service without a backend.
type stubAuth struct {
	signups int
}

func (s *stubAuth) Signup(ctx context.Context, email, password, confirm string) (string, error) {
	s.signups++
	return email, nil
}
func (s *stubAuth) VerifyRegistrationOTP(ctx context.Context, email, code string) error { return nil }
func (s *stubAuth) ResendRegistrationOTP(ctx context.Context, email string) error       { return nil }
func (s *stubAuth) SavePersonalDetails(ctx context.Context, d auth.PersonalDetails) error {
	return nil
}
func (s *stubAuth) SaveSecurityQuestion(ctx context.Context, question, answer string) error {
	return nil
}
func (s *stubAuth) CreatePIN(ctx context.Context, pin, confirm string) error     { return nil }
func (s *stubAuth) Login(ctx context.Context, email, password string) error      { return nil }
func (s *stubAuth) VerifyLoginOTP(ctx context.Context, email, code string) error { return nil }
func (s *stubAuth) ResendLoginOTP(ctx context.Context, email string) error       { return nil }
func (s *stubAuth) Logout(ctx context.Context) error                             { return nil }
func (s *stubAuth) SendResetOTP(ctx context.Context, email string) error         { return nil }
func (s *stubAuth) VerifyResetOTP(ctx context.Context, email, code string) (string, error) {
	return "rt1", nil
}
func (s *stubAuth) ResetPassword(ctx context.Context, resetToken, newPassword, confirm string) error {
	return nil
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	sessions, err := session.Open(t.TempDir())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &App{
		Auth:          &stubAuth{},
		Sessions:      sessions,
		ResendSeconds: 34,
		In:            strings.NewReader(input),
		Out:           out,
	}, out
}

func TestPrompt_InputClosed(t *testing.T) {
	out := &bytes.Buffer{}

	t.Run("empty_stream", func(t *testing.T) {
		_, err := prompt(bufio.NewReader(strings.NewReader("")), out, "> ")
		assert.ErrorIs(t, err, errInputClosed)
	})

	t.Run("final_unterminated_line_counts", func(t *testing.T) {
		line, err := prompt(bufio.NewReader(strings.NewReader("abc")), out, "> ")
		require.NoError(t, err)
		assert.Equal(t, "abc", line)
	})

	t.Run("promptInt_stops_retrying", func(t *testing.T) {
		_, err := promptInt(bufio.NewReader(strings.NewReader("not-a-number\n")), out, "> ")
		assert.ErrorIs(t, err, errInputClosed)
	})
}

func TestRunSignup_EndOfInputAborts(t *testing.T) {
	// No input at all: the first prompt must abort the command instead of
	// resubmitting empty fields forever.
	app, out := newTestApp(t, "")
	code := app.Run([]string{"signup"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "input closed")
}

func TestRunSignup_EndOfInputMidFlow(t *testing.T) {
	// Credentials submit fine, then the stream ends at the OTP step.
	app, out := newTestApp(t, "a@b.com\nsecret1\nsecret1\n")
	code := app.Run([]string{"signup"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "A verification code was sent to a@b.com.")
	assert.Contains(t, out.String(), "input closed")
	assert.Equal(t, 1, app.Auth.(*stubAuth).signups)
}

func TestRunLogin_EndOfInputAborts(t *testing.T) {
	app, _ := newTestApp(t, "")
	assert.Equal(t, 1, app.Run([]string{"login"}))
}
