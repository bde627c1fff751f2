// Package users wires account registration and the login workflow together,
// issuing a signed session token on successful authentication.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tunecrate/internal/models"
)

// SessionTTL bounds how long an issued session token stays valid.
const SessionTTL = 24 * time.Hour

// ErrInvalidSession signals a session token that failed verification.
var ErrInvalidSession = errors.New("invalid session token")

// Registry captures the account operations the service needs.
type Registry interface {
	CreateUser(email, username, password string, role models.Role) (*models.User, error)
}

// Authenticator gates logins.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// Service exposes signup and login workflows.
type Service struct {
	registry Registry
	auth     Authenticator
	secret   []byte
	now      func() time.Time
}

// New wires a Service over the given registry and authenticator. The secret
// signs session tokens.
func New(registry Registry, auth Authenticator, secret []byte) *Service {
	return &Service{
		registry: registry,
		auth:     auth,
		secret:   secret,
		now:      time.Now,
	}
}

// Signup registers a new account. The caller has already validated field
// shapes; uniqueness is enforced by the registry.
func (s *Service) Signup(ctx context.Context, email, username, password string, role models.Role) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.registry.CreateUser(email, username, password, role)
}

// Login authenticates the account and mints a session token for it.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return nil, "", err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return user, token, nil
}

// ValidateSession verifies a session token and returns the subject username.
func (s *Service) ValidateSession(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidSession
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidSession
	}
	return subject, nil
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(SessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
