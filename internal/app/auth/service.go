// Package auth implements username/password authentication with
// failed-attempt tracking and temporary account lockout.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"tunecrate/internal/models"
)

const (
	// MaxFailedAttempts is the number of consecutive failures that locks
	// an account.
	MaxFailedAttempts = 3
	// LockoutDuration is how long a locked account rejects every attempt,
	// correct password included.
	LockoutDuration = 10 * time.Minute
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAccountLocked signals the account is inside its lockout window.
	ErrAccountLocked = errors.New("account locked due to too many failed login attempts")

	dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")
)

// UserSource resolves usernames to accounts by exact match.
type UserSource interface {
	FindByUsername(username string) (*models.User, bool)
}

// Service gates authentication. Attempt counters and lock timestamps are
// created lazily per username; a lock clears only through expiry, checked
// lazily on the next attempt, and a success only resets the counter.
type Service struct {
	users          UserSource
	now            func() time.Time
	failedAttempts map[string]int
	lockedAt       map[string]time.Time
	log            zerolog.Logger
}

// New builds a Service over the given account source.
func New(users UserSource, logger zerolog.Logger) *Service {
	return &Service{
		users:          users,
		now:            time.Now,
		failedAttempts: make(map[string]int),
		lockedAt:       make(map[string]time.Time),
		log:            logger,
	}
}

// WithClock overrides the time source. Tests use it to simulate lock expiry
// instead of sleeping.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Authenticate validates credentials for username.
//
// A locked account fails immediately without touching counters or looking
// up the account. An expired lock is cleared before the attempt proceeds.
// Any failure at or past the attempt limit locks the account for
// LockoutDuration.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.isLocked(username) {
		s.log.Warn().Str("username", username).Msg("login rejected: account locked")
		return nil, ErrAccountLocked
	}

	user, ok := s.users.FindByUsername(username)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
		return nil, s.recordFailure(username)
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, s.recordFailure(username)
	}

	s.failedAttempts[username] = 0
	s.log.Info().Str("username", username).Str("role", user.Role.String()).Msg("login successful")
	return user, nil
}

// FailedAttempts returns the current failure count for username.
func (s *Service) FailedAttempts(username string) int {
	return s.failedAttempts[username]
}

// isLocked reports whether username is inside its lockout window, clearing
// the lock entry when the window has elapsed.
func (s *Service) isLocked(username string) bool {
	lockedAt, ok := s.lockedAt[username]
	if !ok {
		return false
	}
	if s.now().Sub(lockedAt) < LockoutDuration {
		return true
	}
	delete(s.lockedAt, username)
	return false
}

func (s *Service) recordFailure(username string) error {
	s.failedAttempts[username]++
	if s.failedAttempts[username] >= MaxFailedAttempts {
		s.lockedAt[username] = s.now()
		s.log.Warn().
			Str("username", username).
			Int("failed_attempts", s.failedAttempts[username]).
			Dur("lockout", LockoutDuration).
			Msg("account locked")
	} else {
		s.log.Debug().
			Str("username", username).
			Int("failed_attempts", s.failedAttempts[username]).
			Msg("failed login attempt")
	}
	return ErrInvalidCredentials
}
