package session

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrNoPIN is returned when verification is attempted before a PIN exists.
var ErrNoPIN = errors.New("no PIN set on this device")

// ErrWrongPIN is returned when the entered PIN does not match.
var ErrWrongPIN = errors.New("incorrect PIN")

// SetPIN stores a bcrypt hash of the PIN. The raw PIN never touches disk.
func (s *Store) SetPIN(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PINHash = string(hash)
	s.state.HasPIN = true
	return s.flushLocked()
}

// HasPIN reports whether a local PIN has been created.
func (s *Store) HasPIN() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasPIN && s.state.PINHash != ""
}

// VerifyPIN checks an entered PIN against the stored hash.
func (s *Store) VerifyPIN(pin string) error {
	s.mu.Lock()
	hash := s.state.PINHash
	s.mu.Unlock()
	if hash == "" {
		return ErrNoPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return ErrWrongPIN
	}
	return nil
}
