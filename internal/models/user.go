// Package models defines the domain value types shared across the
// application: songs, playlists, and registered accounts.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Role tags an account with its capabilities. The set is closed, so
// role-specific behavior dispatches on the tag instead of a type hierarchy.
type Role int8

const (
	RoleListener Role = iota
	RoleArtist
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleListener:
		return "listener"
	case RoleArtist:
		return "artist"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int8(r))
	}
}

// User is a registered account. The library is only populated for
// listener-role accounts; artists and admins never own playlists.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash []byte
	Role         Role
	Library      []*Playlist
}

// CreatePlaylist appends a new, empty playlist to the library and returns it.
func (u *User) CreatePlaylist(name string) *Playlist {
	p := NewPlaylist(name, u.Username)
	u.Library = append(u.Library, p)
	return p
}

// PlaylistAt returns the playlist at the given library index. Indices are
// positional and shift when earlier playlists are deleted.
func (u *User) PlaylistAt(index int) (*Playlist, error) {
	if index < 0 || index >= len(u.Library) {
		return nil, ErrIndexOutOfRange
	}
	return u.Library[index], nil
}

// DeletePlaylistAt removes the playlist at index; later entries shift down
// by one.
func (u *User) DeletePlaylistAt(index int) error {
	if index < 0 || index >= len(u.Library) {
		return ErrIndexOutOfRange
	}
	u.Library = append(u.Library[:index], u.Library[index+1:]...)
	return nil
}

// ClearLibrary drops every playlist the account owns.
func (u *User) ClearLibrary() {
	u.Library = nil
}

func (u *User) String() string {
	return fmt.Sprintf("'%s' - %s - %s", u.Username, u.Email, u.Role)
}
