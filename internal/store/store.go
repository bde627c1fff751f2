// Package store holds the whole application state in memory: every
// registered account and the global song catalog. Nothing is persisted;
// state lives for one process run and is gone on exit.
//
// A Store and the catalog, users, and playlists it hands out are not safe
// for uncoordinated concurrent mutation. The console driver is strictly
// sequential; a host embedding this package from multiple goroutines must
// serialize access to each shared instance itself.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tunecrate/internal/models"
)

var (
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrEmailTaken signals the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the process-wide system state. It is built once at startup and
// threaded explicitly through every service, never reached as a hidden
// singleton, so tests can construct isolated instances.
type Store struct {
	users   []*models.User
	catalog *Catalog
}

// New builds an empty Store.
func New() *Store {
	return &Store{catalog: NewCatalog()}
}

// Catalog returns the shared song catalog.
func (s *Store) Catalog() *Catalog {
	return s.catalog
}

// CreateUser registers an account, enforcing global username and email
// uniqueness. The registration flow has already validated field shapes;
// only presence and uniqueness are checked here.
func (s *Store) CreateUser(email, username, password string, role models.Role) (*models.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrUserExists
		}
		if email != "" && u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	s.users = append(s.users, user)
	return user, nil
}

// FindByUsername returns the account with the exact username.
func (s *Store) FindByUsername(username string) (*models.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// Users returns every registered account in registration order.
func (s *Store) Users() []*models.User {
	out := make([]*models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Listeners returns every listener-role account in registration order.
func (s *Store) Listeners() []*models.User {
	var out []*models.User
	for _, u := range s.users {
		if u.Role == models.RoleListener {
			out = append(out, u)
		}
	}
	return out
}

// AllPlaylists returns every listener's playlists, listener registration
// order first and library order within each listener.
func (s *Store) AllPlaylists() []*models.Playlist {
	var out []*models.Playlist
	for _, u := range s.users {
		out = append(out, u.Library...)
	}
	return out
}

// DeleteUser removes the account with the exact username. A listener's
// playlists go with it.
func (s *Store) DeleteUser(username string) bool {
	for i, u := range s.users {
		if u.Username == username {
			u.ClearLibrary()
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}
