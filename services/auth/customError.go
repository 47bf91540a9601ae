package auth

import "errors"

// ErrNotAuthenticated signals a missing bearer token before a call that
// requires one. It is raised locally, with no network round-trip.
var ErrNotAuthenticated = errors.New("please login again")

// ErrMissingAccessToken signals a verification response without a token:
// the backend accepted the OTP but the client cannot establish a session.
var ErrMissingAccessToken = errors.New("signup verified but no access token returned")

// ErrMissingResetToken signals a verified forgot-password OTP response that
// did not carry the reset token required to authorize the password change.
var ErrMissingResetToken = errors.New("code verified but no reset token returned")

// ValidationError is a client-side check failure, detected before any
// network call. It blocks advancement and is shown inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
