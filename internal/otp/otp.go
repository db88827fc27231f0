// Package otp issues and verifies short-lived one-time passcodes for the
// signup and password reset flows. Codes live in process memory only; a
// restart invalidates outstanding codes, which simply forces a resend.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"mystore/internal/model"

	"github.com/rs/zerolog"
)

// TTL is how long an issued code stays valid.
const TTL = 5 * time.Minute

type entry struct {
	code      string
	expiresAt time.Time
}

// Store issues and verifies codes keyed by email address. Safe for
// concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	logger  zerolog.Logger
	now     func() time.Time
}

// NewStore creates an empty OTP store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		entries: make(map[string]entry),
		logger:  logger.With().Str("component", "otp").Logger(),
		now:     time.Now,
	}
}

// Issue generates a fresh 6-digit code for the email, replacing any
// outstanding code.
func (s *Store) Issue(email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	s.mu.Lock()
	s.entries[email] = entry{code: code, expiresAt: s.now().Add(TTL)}
	s.mu.Unlock()

	s.logger.Debug().Str("email", email).Msg("otp issued")
	return code, nil
}

// Check validates a submitted code without consuming it. Used by the
// intermediate verification step of multi-request flows, where the same
// code must still be valid for the final request.
func (s *Store) Check(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate(email, code)
}

// Verify checks a submitted code. A correct code is consumed and cannot be
// replayed; an expired code is dropped. An incorrect submission leaves the
// stored code in place so the user can retry.
func (s *Store) Verify(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(email, code); err != nil {
		return err
	}
	delete(s.entries, email)
	return nil
}

func (s *Store) validate(email, code string) error {
	e, ok := s.entries[email]
	if !ok {
		return model.ErrOTPNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, email)
		return model.ErrOTPExpired
	}
	if e.code != code {
		return model.ErrOTPMismatch
	}
	return nil
}
